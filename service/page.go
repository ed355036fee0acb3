package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"fantasy-stats-web/api"
	"fantasy-stats-web/api/fantasystats"
	"fantasy-stats-web/logging"
	"fantasy-stats-web/models"

	"golang.org/x/sync/errgroup"
)

// PageState is where a page orchestrator ended up.
type PageState int

const (
	PageLoading PageState = iota
	PageReady
	PageRedirecting
	PageErrored
)

func (s PageState) String() string {
	switch s {
	case PageLoading:
		return "loading"
	case PageReady:
		return "ready"
	case PageRedirecting:
		return "redirecting"
	case PageErrored:
		return "errored"
	default:
		return fmt.Sprintf("PageState(%d)", int(s))
	}
}

// PageOutcome is embedded by every page view model.
type PageOutcome struct {
	State        PageState
	RedirectPath string
}

// Redirecting reports whether the page must navigate to RedirectPath instead
// of rendering.
func (o PageOutcome) Redirecting() bool {
	return o.State == PageRedirecting
}

func (o PageOutcome) Outcome() PageOutcome {
	return o
}

// settle moves the page out of Loading. A redirect error becomes the
// Redirecting state and is swallowed; any other error is Errored and is
// returned for the error boundary.
func (o *PageOutcome) settle(err error) error {
	if err == nil {
		o.State = PageReady
		return nil
	}
	if path, ok := asRedirect(err); ok {
		o.State = PageRedirecting
		o.RedirectPath = path
		return nil
	}
	o.State = PageErrored
	return err
}

// redirectError stops a page's fan-out at the first redirect.
type redirectError struct {
	path string
}

func (e *redirectError) Error() string {
	return "redirect to " + e.path
}

func redirectTo(path string) error {
	return &redirectError{path: path}
}

func asRedirect(err error) (string, bool) {
	var re *redirectError
	if errors.As(err, &re) {
		return re.path, true
	}
	return "", false
}

// pageCalls runs a page's backend calls side by side. Only a redirect cancels
// the calls still in flight; failures let the others settle, and Wait prefers
// any redirect over any failure.
type pageCalls struct {
	group  errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	redirect error
	failure  error
}

func newPageCalls(ctx context.Context) *pageCalls {
	ctx, cancel := context.WithCancel(ctx)
	return &pageCalls{ctx: ctx, cancel: cancel}
}

func (c *pageCalls) Go(call func(ctx context.Context) error) {
	c.group.Go(func() error {
		c.settle(call(c.ctx))
		return nil
	})
}

func (c *pageCalls) settle(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := asRedirect(err); ok {
		if c.redirect == nil {
			c.redirect = err
			c.cancel()
		}
		return
	}
	if c.failure == nil {
		c.failure = err
	}
}

// Wait blocks until every call returned. It returns the first redirect, or
// else the first failure.
func (c *pageCalls) Wait() error {
	c.group.Wait()
	c.cancel()
	if c.redirect != nil {
		return c.redirect
	}
	return c.failure
}

// fetchInto stores a successful response in dst. A redirect response is
// turned into a redirectError.
func fetchInto[T any](dst *T, resp *api.Response[T], err error) error {
	if err != nil {
		return err
	}
	if resp.Redirected() {
		return redirectTo(resp.Redirect)
	}
	*dst = resp.Data
	return nil
}

// Section is a table whose failure is shown in place instead of failing the
// whole page.
type Section[T any] struct {
	Data T
	Err  error
}

func (s Section[T]) Unavailable() bool {
	return s.Err != nil
}

// loadSection fills s. Failures stay local to the section; redirects are
// returned so the page navigates away.
func loadSection[T any](s *Section[T], resp *api.Response[T], err error) error {
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		s.Err = err
		return nil
	}
	if resp.Redirected() {
		return redirectTo(resp.Redirect)
	}
	s.Data = resp.Data
	return nil
}

// RecentLeagueStore records the leagues visitors open.
type RecentLeagueStore interface {
	Record(league models.RecentLeague) error
	List() ([]models.RecentLeague, error)
	Forget(leagueYear, leagueID string) error
}

// preloader warms the backend's league object without holding up the page.
type preloader struct {
	api     fantasystats.FantasyStatsAPI
	timeout time.Duration
	logger  *logging.Logger
}

// preload runs detached from ctx's cancellation so a finished page request
// does not abort it. Failures are only logged.
func (p preloader) preload(ctx context.Context, leagueYear, leagueID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	go func() {
		defer cancel()
		if err := p.api.Preload(ctx, leagueYear, leagueID); err != nil {
			p.logger.Warn("Preload of %s/%s failed: %v", leagueYear, leagueID, err)
			return
		}
		p.logger.Debug("League %s is active for the year %s", leagueID, leagueYear)
	}()
}
