// Package databasetest provides an in-memory stand-in for the graph client.
package databasetest

import (
	"context"
	"strings"
	"sync"

	"neoflix/internal/database"
)

// Call records one query sent through a fake transaction.
type Call struct {
	Mode   string
	TxID   int
	Query  string
	Params map[string]any
}

// HandlerFunc answers queries that no stub matched.
type HandlerFunc func(mode, query string, params map[string]any) ([]database.Row, error)

type stub struct {
	fragment string
	rows     []database.Row
	err      error
}

// Graph implements database.Graph. Queries are answered by the first stub
// whose fragment the query contains, then by the handler, else with no rows.
type Graph struct {
	mu      sync.Mutex
	stubs   []stub
	handler HandlerFunc
	calls   []Call
	txCount int
}

var _ database.Graph = (*Graph)(nil)

func New() *Graph {
	return &Graph{}
}

func (g *Graph) On(fragment string, rows ...database.Row) *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()
	if rows == nil {
		rows = []database.Row{}
	}
	g.stubs = append(g.stubs, stub{fragment: fragment, rows: rows})
	return g
}

func (g *Graph) OnError(fragment string, err error) *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stubs = append(g.stubs, stub{fragment: fragment, err: err})
	return g
}

func (g *Graph) Handle(fn HandlerFunc) *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handler = fn
	return g
}

func (g *Graph) ReadTx(ctx context.Context, work database.TxFunc) (any, error) {
	return work(ctx, g.begin("read"))
}

func (g *Graph) WriteTx(ctx context.Context, work database.TxFunc) (any, error) {
	return work(ctx, g.begin("write"))
}

// Calls returns every recorded query in order.
func (g *Graph) Calls() []Call {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Call(nil), g.calls...)
}

// Find returns the first recorded call whose query contains fragment.
func (g *Graph) Find(fragment string) (Call, bool) {
	for _, call := range g.Calls() {
		if strings.Contains(call.Query, fragment) {
			return call, true
		}
	}
	return Call{}, false
}

func (g *Graph) begin(mode string) *tx {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.txCount++
	return &tx{graph: g, mode: mode, id: g.txCount}
}

type tx struct {
	graph *Graph
	mode  string
	id    int
}

func (t *tx) Run(ctx context.Context, query string, params map[string]any) ([]database.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g := t.graph
	g.mu.Lock()
	g.calls = append(g.calls, Call{Mode: t.mode, TxID: t.id, Query: query, Params: params})
	stubs := g.stubs
	handler := g.handler
	g.mu.Unlock()

	for _, s := range stubs {
		if strings.Contains(query, s.fragment) {
			if s.err != nil {
				return nil, s.err
			}
			return s.rows, nil
		}
	}
	if handler != nil {
		return handler(t.mode, query, params)
	}
	return []database.Row{}, nil
}
