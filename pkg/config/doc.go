// Package config builds cloud configurations from key/value providers and
// YAML or JSON files, and decodes tag lists from the same formats.
//
// Keys live under the "tagcloud" namespace:
//
//	tagcloud:
//	  fontSize:
//	    min: 10
//	    max: 32
//	  fontUnit: em
//	  addSpaces: true
//	  shuffleTags: false
package config
