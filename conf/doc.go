// Package conf provides a hierarchical, dot-notation addressed settings
// store backed by nested maps, with JSON file persistence and schema
// validation.
//
// Keys are dot-separated paths ("database.host"); each segment addresses
// one level of nesting. Reads never fail: Get returns a caller-supplied
// default on any miss, and Has/Delete/Validate report soft failures as
// booleans. Only file I/O (Load/Save) returns errors.
//
// Quick start:
//
//	store := conf.New()
//	store.Set("database.host", "localhost")
//	store.Set("database.port", 5432)
//
//	host := store.Get("database.host", "127.0.0.1").(string)
//
//	if err := store.Save("config.json"); err != nil {
//	    log.Fatal(err)
//	}
//
// Files are saved as pretty-printed JSON (2-space indent, non-ASCII kept
// unescaped). Load accepts JSON, TOML, and YAML documents, chosen by file
// extension and falling back to content detection; the tree is fully
// replaced by the loaded document.
//
// A Store is owned by a single goroutine; it performs no locking and has
// no background lifecycle.
package conf
