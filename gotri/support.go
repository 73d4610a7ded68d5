package gotri

import "sync"

func NewCatalogContext() CatalogContext {
	ctx := &catalogContext{
		openCatalogs: make(map[Catalog]struct{}),
		closing:      make(chan struct{}),
		closed:       make(chan struct{}),
	}
	ctx.openCount.Add(1)
	go func() {
		<-ctx.closing
		ctx.openCount.Done()
		ctx.openCount.Wait()
		close(ctx.closed)
	}()
	return ctx
}

type catalogContext struct {
	mu           sync.Mutex
	openCount    sync.WaitGroup
	openCatalogs map[Catalog]struct{}
	closing      chan struct{}
	closed       chan struct{}
}

func (ctx *catalogContext) AttachCatalog(cat Catalog) {
	ctx.openCount.Add(1)
	ctx.mu.Lock()
	ctx.openCatalogs[cat] = struct{}{}
	ctx.mu.Unlock()
}

func (ctx *catalogContext) DetachCatalog(cat Catalog) {
	ctx.mu.Lock()
	if _, exists := ctx.openCatalogs[cat]; exists {
		delete(ctx.openCatalogs, cat)
		ctx.openCount.Done()
	}
	ctx.mu.Unlock()
}

func (ctx *catalogContext) Done() <-chan struct{} {
	return ctx.closed
}

// Close is safe to call more than once.
func (ctx *catalogContext) Close() {
	ctx.mu.Lock()
	select {
	case <-ctx.closing:
		// already closing
	default:
		close(ctx.closing)
		for cat := range ctx.openCatalogs {
			go cat.Close()
		}
	}
	ctx.mu.Unlock()
}
