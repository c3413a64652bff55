package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/wb-go/wbf/dbpg"
)

// stubConn scripts query responses by substring so repository transaction
// paths can be exercised without a live Postgres. Every statement that
// reaches the driver is appended to log in execution order.
type stubConn struct {
	mu        sync.Mutex
	log       []string
	rows      map[string][][]driver.Value
	execErr   map[string]error
	commits   int
	rollbacks int
}

func newStubConn() *stubConn {
	return &stubConn{
		rows:    make(map[string][][]driver.Value),
		execErr: make(map[string]error),
	}
}

func newStubDB(conn *stubConn) *dbpg.DB {
	return &dbpg.DB{Master: sql.OpenDB(stubConnector{conn: conn})}
}

func (c *stubConn) record(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = append(c.log, query)
}

func (c *stubConn) statements() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.log...)
}

// indexOf reports the position of the first logged statement containing
// substr, or -1.
func (c *stubConn) indexOf(substr string) int {
	for i, q := range c.statements() {
		if strings.Contains(q, substr) {
			return i
		}
	}
	return -1
}

func (c *stubConn) countOf(substr string) int {
	n := 0
	for _, q := range c.statements() {
		if strings.Contains(q, substr) {
			n++
		}
	}
	return n
}

func (c *stubConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	c.record(query)

	c.mu.Lock()
	defer c.mu.Unlock()
	for substr, data := range c.rows {
		if strings.Contains(query, substr) {
			cols := 1
			if len(data) > 0 {
				cols = len(data[0])
			}
			names := make([]string, cols)
			for i := range names {
				names[i] = "c"
			}
			return &stubRows{cols: names, data: data}, nil
		}
	}

	return nil, errors.New("unscripted query: " + query)
}

func (c *stubConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.record(query)

	c.mu.Lock()
	defer c.mu.Unlock()
	for substr, err := range c.execErr {
		if strings.Contains(query, substr) {
			return nil, err
		}
	}

	return driver.RowsAffected(1), nil
}

func (c *stubConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return &stubTx{conn: c}, nil
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported by stub")
}

func (c *stubConn) Begin() (driver.Tx, error) {
	return &stubTx{conn: c}, nil
}

func (c *stubConn) Close() error { return nil }

type stubTx struct {
	conn *stubConn
}

func (t *stubTx) Commit() error {
	t.conn.mu.Lock()
	defer t.conn.mu.Unlock()
	t.conn.commits++
	return nil
}

func (t *stubTx) Rollback() error {
	t.conn.mu.Lock()
	defer t.conn.mu.Unlock()
	t.conn.rollbacks++
	return nil
}

type stubRows struct {
	cols []string
	data [][]driver.Value
	i    int
}

func (r *stubRows) Columns() []string { return r.cols }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.i >= len(r.data) {
		return io.EOF
	}
	copy(dest, r.data[r.i])
	r.i++
	return nil
}

type stubConnector struct {
	conn *stubConn
}

func (c stubConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c stubConnector) Driver() driver.Driver                        { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open not supported by stub")
}
