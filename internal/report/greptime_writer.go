package report

import (
	"context"
	"log"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
)

// greptimeClient abstracts the ingester client for testing.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter persists conflict rows to GreptimeDB via the ingester
// client.
type GreptimeDBWriter struct {
	client greptimeClient
	table  string
}

// NewGreptimeDBWriter connects to a GreptimeDB endpoint. An empty tableName
// falls back to ConflictTableName.
func NewGreptimeDBWriter(endpoint, database, tableName string) (*GreptimeDBWriter, error) {
	cfg := greptime.NewConfig(endpoint).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if tableName == "" {
		tableName = ConflictTableName
	}
	return &GreptimeDBWriter{client: client, table: tableName}, nil
}

// WriteConflict inserts a single conflict row.
func (w *GreptimeDBWriter) WriteConflict(row ConflictRow) error {
	return w.WriteConflicts([]ConflictRow{row})
}

// WriteConflicts inserts multiple conflict rows in one request.
func (w *GreptimeDBWriter) WriteConflicts(rows []ConflictRow) error {
	if len(rows) == 0 {
		return nil
	}

	tbl, err := table.New(w.table)
	if err != nil {
		return err
	}
	tbl.AddTagColumn("run_id", types.STRING)
	tbl.AddTagColumn("primary_id", types.STRING)
	tbl.AddTagColumn("conflicting_id", types.STRING)
	tbl.AddFieldColumn("x", types.FLOAT)
	tbl.AddFieldColumn("y", types.FLOAT)
	tbl.AddFieldColumn("alt", types.FLOAT)
	tbl.AddFieldColumn("conflict_time", types.FLOAT)
	tbl.AddFieldColumn("min_distance", types.FLOAT)
	tbl.AddFieldColumn("safety_buffer", types.FLOAT)
	tbl.AddFieldColumn("severity", types.STRING)
	tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND)

	for _, r := range rows {
		if err := tbl.AddRow(r.RunID, r.PrimaryID, r.ConflictingID,
			r.X, r.Y, r.Alt, r.ConflictTime, r.MinDistance, r.SafetyBuffer,
			r.Severity, r.Timestamp); err != nil {
			return err
		}
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		log.Printf("[GreptimeDBWriter] Write failed: %v", err)
		return err
	}
	return nil
}
