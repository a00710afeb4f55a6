package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnEncodeStart(ctx, "rsc", "M")
	p.OnEncodeComplete(ctx, "rsc", 21, time.Millisecond, nil)
	p.OnLayoutComplete(ctx, 441, time.Millisecond)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "svg")
	c.OnCacheMiss(ctx, "png")
	c.OnCacheSet(ctx, "png", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/qr.svg")
	h.OnResponse(ctx, "GET", "/qr.svg", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	rec := &recorder{}
	SetPipelineHooks(rec)
	SetCacheHooks(rec)
	SetHTTPHooks(rec)
	if Pipeline() != rec || Cache() != rec || HTTP() != rec {
		t.Error("Set* should register custom hooks")
	}

	Cache().OnCacheHit(context.Background(), "svg")
	if rec.hits != 1 {
		t.Errorf("hits = %d, want 1", rec.hits)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recorder{}
	SetPipelineHooks(rec)
	SetPipelineHooks(nil)
	if Pipeline() != rec {
		t.Error("SetPipelineHooks(nil) replaced the registered hooks")
	}
	SetCacheHooks(nil)
	SetHTTPHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) replaced the defaults")
	}
}

type recorder struct {
	NoopPipelineHooks
	NoopHTTPHooks
	hits int
}

func (r *recorder) OnCacheHit(context.Context, string)      { r.hits++ }
func (r *recorder) OnCacheMiss(context.Context, string)     {}
func (r *recorder) OnCacheSet(context.Context, string, int) {}
