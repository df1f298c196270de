// Package inventory loads scriptable objects from a YAML inventory file.
//
// The export pipeline never connects to a database server; it consumes
// objects whose definitions were captured ahead of time. An inventory file
// declares servers and the objects under them:
//
//	servers:
//	  - name: SQL01
//	    objects:
//	      - name: nightly-backup
//	        kind: Job
//	        container: JobServer
//	        definition: |
//	          EXEC msdb.dbo.sp_add_job @job_name = N'nightly-backup'
//
// Load returns the objects in file order as scripting.Scriptable values with
// their owning hierarchy wired up: object -> optional container -> server.
// Each object's Script method renders the stored definition honoring the
// scripting options it is handed (database context, drops, batch separator).
package inventory
