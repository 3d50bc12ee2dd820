// Package config provides configuration parsing for vattr.
//
// The configuration is stored in vattr.json in the working directory.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "render": {
//	    "pretty": false,
//	    "indent": "  ",
//	    "escapeAttributes": true
//	  },
//	  "serve": {
//	    "host": "localhost",
//	    "port": 8080,
//	    "tick": "1s"
//	  },
//	  "metrics": {
//	    "namespace": "vattr"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "publish": {
//	    "target": "s3://site/index.html",
//	    "region": "us-east-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Address:", cfg.ServeAddress())
package config
