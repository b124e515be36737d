// Package config loads configuration for the vbind command.
//
// Configuration comes from vbind.yaml, VBIND_* environment variables, and
// command-line flags, in increasing order of precedence.
//
// # Configuration File Structure
//
//	template: page.html
//	script: counter.yaml
//	root: "#app"
//	log:
//	  level: debug
//	render:
//	  pretty: true
//	  strip_annotations: false
//	metrics:
//	  enabled: true
//	  namespace: vbind
//
// Relative template and script paths resolve against the directory that
// holds the config file.
//
// # Usage
//
//	cfg, err := config.Load("", cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
