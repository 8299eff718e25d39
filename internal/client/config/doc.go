// Package config loads the Daybook client configuration.
//
// Sources are applied in order, later ones winning:
//
//  1. Built-in defaults (Config.LoadDefaults).
//  2. A JSON file named by the -c/-config flag.
//  3. Individual command-line flags (-a, -t, -d).
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either duration strings ("15s") or integer nanoseconds.
package config
