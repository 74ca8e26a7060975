// Package i18n holds the localization catalog: an immutable table of message
// keys to per-language text, resolved with a fallback to the default language.
// Every screen and the triage verdicts render through it.
package i18n
