// Package attendance is the check-in desk surface of roster-manager.
//
// It owns the session roster: workbook upload (full replace), the check-in
// and walk-in registration operations, xlsx export, and optional archival
// of exported snapshots to object storage.
//
// # HTTP Endpoints
//
//   - POST   /roster                 : Upload a roster workbook (multipart "file").
//   - GET    /roster                 : Current records plus live headcounts.
//   - GET    /roster/export          : Download the roster as xlsx.
//   - POST   /roster/checkin         : Process one scanned identifier.
//   - POST   /roster/register        : Register a walk-in as present.
//   - POST   /roster/snapshots       : Archive an export to the snapshot bucket.
//   - GET    /roster/snapshots       : List archived snapshots.
//   - DELETE /roster/snapshots/:name : Delete an archived snapshot.
package attendance
