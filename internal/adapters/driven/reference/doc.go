// Package reference loads the appendix reference table from YAML.
//
// The table maps each category to the appendix codes it contains and the
// canonical title registered for every code:
//
//	version: 1
//	categories:
//	  "D - Manuals":
//	    - code: D1
//	      title: Bridge Design Manual
//
// JSON files are accepted as well, since JSON is a subset of YAML. The
// project's full table is embedded and used when no path is configured.
package reference
