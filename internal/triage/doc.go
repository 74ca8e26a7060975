// Package triage maps a set of selected symptoms to a severity verdict with a
// fixed priority ladder of rules, and provides the Session state machine a
// presentation layer uses to collect a selection and show the verdict.
package triage
