package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/token-bubbles/audio"
	"github.com/lixenwraith/token-bubbles/config"
	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/engine"
	"github.com/lixenwraith/token-bubbles/input"
)

type loadCall struct {
	name  string
	tf    core.Timeframe
	force bool
}

type fakeLoader struct {
	mu    sync.Mutex
	calls []loadCall
	err   error
}

func (f *fakeLoader) Load(ctx context.Context, name string, tf core.Timeframe, force bool) ([]core.Entity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, loadCall{name: name, tf: tf, force: force})
	if f.err != nil {
		return nil, f.err
	}
	return testEntities(), nil
}

func (f *fakeLoader) last() loadCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return loadCall{}
	}
	return f.calls[len(f.calls)-1]
}

func testEntities() []core.Entity {
	return []core.Entity{
		{ID: "eth:0xaaa", Symbol: "AAA", Price: 1.5, PriceChangePct: 12, MarketCap: 5e6, Chain: "eth"},
		{ID: "sol:0xbbb", Symbol: "BBB", Price: 0.02, PriceChangePct: -4, MarketCap: 9e6, Chain: "sol"},
	}
}

func newTestApp(t *testing.T, lists []string) (*App, *fakeLoader) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Data.List = lists[0]
	cfg.View.Seed = 7

	src := &fakeLoader{}
	a := newApp(screen, cfg, src, lists, audio.NewSoundManager(false), zerolog.Nop())
	a.resize()
	return a, src
}

// waitResult applies the next finished load
func waitResult(t *testing.T, a *App) fetchResult {
	t.Helper()
	select {
	case r := <-a.results:
		a.applyResult(r)
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("no fetch result")
	}
	return fetchResult{}
}

func TestAppLoadCreatesBodies(t *testing.T) {
	a, src := newTestApp(t, []string{"ALL"})

	a.orch.Refresh()
	assert.True(t, a.orch.Status().Loading)

	r := waitResult(t, a)
	require.NoError(t, r.err)
	assert.Equal(t, "ALL", src.last().name)
	assert.Equal(t, core.Timeframe24h, src.last().tf)
	assert.False(t, a.orch.Status().Loading)
	assert.Len(t, a.orch.World().Bodies(), 2)
	assert.Equal(t, input.ModeBubbles, a.machine.Mode())
}

func TestAppStaleResultDropped(t *testing.T) {
	a, _ := newTestApp(t, []string{"ALL"})
	a.token = 2

	a.applyResult(fetchResult{token: 1, list: "ALL", entities: testEntities()})
	assert.Empty(t, a.orch.World().Bodies())

	a.applyResult(fetchResult{token: 2, list: "ALL", entities: testEntities()})
	assert.Len(t, a.orch.World().Bodies(), 2)
}

func TestAppLoadError(t *testing.T) {
	a, src := newTestApp(t, []string{"ALL"})
	a.orch.Refresh()
	waitResult(t, a)

	src.mu.Lock()
	src.err = errors.New("status 503")
	src.mu.Unlock()

	a.orch.Refresh()
	waitResult(t, a)
	assert.Equal(t, "status 503", a.orch.Status().Err)
	assert.Len(t, a.orch.World().Bodies(), 2, "previous set stays on screen")
}

func TestAppToggleView(t *testing.T) {
	a, _ := newTestApp(t, []string{"ALL"})

	assert.False(t, a.handleIntent(&input.Intent{Type: input.IntentToggleView}))
	assert.Equal(t, engine.ViewTable, a.orch.World().View())
	assert.Equal(t, input.ModeTable, a.machine.Mode())

	a.handleIntent(&input.Intent{Type: input.IntentToggleView})
	assert.Equal(t, engine.ViewBubbles, a.orch.World().View())
	assert.Equal(t, input.ModeBubbles, a.machine.Mode())
}

func TestAppTimeframeFetches(t *testing.T) {
	a, src := newTestApp(t, []string{"ALL"})

	a.handleIntent(&input.Intent{Type: input.IntentTimeframe, Count: 0})
	waitResult(t, a)
	assert.Equal(t, core.Timeframe5m, a.orch.World().Timeframe())
	assert.Equal(t, core.Timeframe5m, src.last().tf)
}

func TestAppListCycle(t *testing.T) {
	a, src := newTestApp(t, []string{"ALL", "Xen"})

	a.handleIntent(&input.Intent{Type: input.IntentNextList})
	waitResult(t, a)
	assert.Equal(t, "Xen", src.last().name)
	assert.Equal(t, "Xen", a.orch.Status().List)

	a.handleIntent(&input.Intent{Type: input.IntentPrevList})
	waitResult(t, a)
	assert.Equal(t, "ALL", src.last().name)
}

func TestAppRefreshForces(t *testing.T) {
	a, src := newTestApp(t, []string{"ALL"})

	a.handleIntent(&input.Intent{Type: input.IntentRefresh})
	waitResult(t, a)
	assert.True(t, src.last().force)

	a.orch.Refresh()
	waitResult(t, a)
	assert.False(t, src.last().force)
}

func TestAppQuitAndEscape(t *testing.T) {
	a, _ := newTestApp(t, []string{"ALL"})
	a.orch.Refresh()
	waitResult(t, a)

	a.orch.Select("eth:0xaaa")
	a.syncMode()
	assert.Equal(t, input.ModeDetail, a.machine.Mode())

	assert.False(t, a.handleIntent(&input.Intent{Type: input.IntentEscape}), "escape closes the panel first")
	assert.Empty(t, a.orch.SelectedID())
	assert.Equal(t, input.ModeBubbles, a.machine.Mode())

	assert.True(t, a.handleIntent(&input.Intent{Type: input.IntentEscape}))
	assert.True(t, a.handleIntent(&input.Intent{Type: input.IntentQuit}))
}

func TestAppTableConfirmOpensDetail(t *testing.T) {
	a, _ := newTestApp(t, []string{"ALL"})
	a.orch.Refresh()
	waitResult(t, a)

	a.handleIntent(&input.Intent{Type: input.IntentToggleView})
	a.handleIntent(&input.Intent{Type: input.IntentConfirm})
	// Default table order is market cap descending
	assert.Equal(t, "sol:0xbbb", a.orch.SelectedID())
	assert.Equal(t, input.ModeDetail, a.machine.Mode())

	a.handleIntent(&input.Intent{Type: input.IntentConfirm})
	assert.Empty(t, a.orch.SelectedID())
	assert.Equal(t, input.ModeTable, a.machine.Mode())
}

func TestAppDrainsSelections(t *testing.T) {
	a, _ := newTestApp(t, []string{"ALL"})
	a.orch.Refresh()
	waitResult(t, a)

	pos := a.orch.World().Bodies()[0].Pos
	down := input.PointerEvent{X: pos.X, Y: pos.Y, Phase: input.PhaseDown}
	up := input.PointerEvent{X: pos.X, Y: pos.Y, Phase: input.PhaseUp}
	a.handleIntent(&input.Intent{Type: input.IntentPointer, Pointer: down})
	a.handleIntent(&input.Intent{Type: input.IntentPointer, Pointer: up})

	assert.Equal(t, int64(1), a.statSelections.Load())
	assert.Zero(t, a.orch.Events().Len(), "queue drained by the loop")
	assert.NotEmpty(t, a.orch.SelectedID())
	assert.Equal(t, input.ModeDetail, a.machine.Mode())
}
