// Package template defines the template rendering contract used to produce
// tag cloud markup, keeping the cloud package independent of any particular
// template engine.
package template
