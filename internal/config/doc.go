// Package config loads htmlc.json, the project configuration for the
// htmlc command.
//
// # Configuration File Structure
//
//	{
//	  "output": "-",
//	  "logLevel": "info",
//	  "server": {
//	    "host": "localhost",
//	    "port": 8089,
//	    "metrics": true,
//	    "maxBodyBytes": 1048576,
//	    "readTimeout": "10s"
//	  },
//	  "s3": {
//	    "bucket": "site",
//	    "prefix": "pages/",
//	    "region": "eu-west-1",
//	    "contentType": "text/html; charset=utf-8"
//	  }
//	}
//
// Missing fields take the defaults from New. Command-line flags override
// file values.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
