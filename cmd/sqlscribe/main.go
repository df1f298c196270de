// Sqlscribe exports captured database object definitions to SQL script files.
//
// It reads a server inventory, scripts each object (jobs, logins, linked
// servers, procedures and more), and writes timestamped .sql files or streams
// the scripts to the console:
//
//	# Export an inventory to auto-named files in the current directory
//	sqlscribe export --input servers.yaml
//
//	# Append everything to one file
//	sqlscribe export --input servers.yaml --path all.sql --append
//
//	# Stream scripts to stdout instead of files
//	sqlscribe export --input servers.yaml --passthru
//
//	# Inspect past runs
//	sqlscribe history --server SQL01 --status failed
//
//	# Run exports on a schedule
//	sqlscribe watch --input servers.yaml
//
// For complete documentation, see: https://scribehq.github.io/sqlscribe
package main

func main() {
	Execute()
}
