// Package manifest loads extension manifests (package.json style) into an
// ordered value tree and extracts the configuration properties they declare.
//
// # Manifest Format
//
// Manifests are usually JSON, YAML is accepted as well:
//
//	{
//	  "contributes": {
//	    "configuration": {
//	      "properties": {
//	        "foo.enable": {
//	          "type": "boolean",
//	          "default": false,
//	          "description": "Enables foo."
//	        }
//	      }
//	    }
//	  }
//	}
//
// Object keys keep the order they have in the file, so properties come out in
// the order the manifest declares them.
//
// # Usage
//
//	loader := manifest.NewLoader()
//	root, err := loader.Load("package.json")
//	if err != nil {
//	    return err
//	}
//
//	props, err := manifest.Properties(root, manifest.DefaultPropertiesPath...)
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrFileNotFound: manifest file does not exist
//   - ErrInvalidFormat: file is not valid JSON/YAML
//   - ErrUnsupportedExt: unsupported file extension
//   - ErrKeyNotFound: a segment of the properties path is missing
package manifest
