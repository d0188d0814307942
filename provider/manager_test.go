package provider

import (
	"context"
	"strings"
	"testing"
	"time"

	"govex/enums"
	"govex/models"
	"govex/util"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeProvider replays a scripted sequence of outcomes, one per call.
// The last entry repeats once the script runs out.
type fakeProvider struct {
	name      string
	available bool
	script    []error
	calls     int
	retries   []int
}

func (f *fakeProvider) Name() string                     { return f.name }
func (f *fakeProvider) Kind() enums.ProviderKind         { return enums.ProviderKindLocal }
func (f *fakeProvider) Available(_ context.Context) bool { return f.available }

func (f *fakeProvider) Extract(_ context.Context, url string, retryAttempt int) (*models.ExtractResult, error) {
	idx := f.calls
	if idx >= len(f.script) {
		idx = len(f.script) - 1
	}
	f.calls++
	f.retries = append(f.retries, retryAttempt)

	err := f.script[idx]
	if err != nil {
		return nil, err
	}
	return &models.ExtractResult{
		VideoInfo: &models.VideoInfo{Title: "ok", URL: url},
	}, nil
}

func transientErr(msg string) *models.ParsedError {
	return &models.ParsedError{
		Kind:      enums.ErrorKindNetworkError,
		Message:   msg,
		Retryable: true,
	}
}

func botErr() *models.ParsedError {
	return &models.ParsedError{
		Kind:      enums.ErrorKindBotDetection,
		Message:   "Sign in to confirm you're not a bot",
		Retryable: true,
	}
}

func newRecordingManager(providers []Provider, maxRetries int) (*Manager, *[]time.Duration) {
	var delays []time.Duration
	m := NewManager(providers, maxRetries, WithSleep(
		func(_ context.Context, d time.Duration) error {
			delays = append(delays, d)
			return nil
		}))
	return m, &delays
}

func TestManagerRetries(t *testing.T) {
	Convey("Manager retry behaviour", t, func() {
		ctx := context.Background()

		Convey("Should retry transient failures with doubling backoff", func() {
			p := &fakeProvider{
				name:      "local",
				available: true,
				script:    []error{transientErr("reset"), transientErr("reset"), nil},
			}
			m, delays := newRecordingManager([]Provider{p}, 3)

			result, err := m.Extract(ctx, "https://example.com/v")
			So(err, ShouldBeNil)
			So(result.Provider, ShouldEqual, "local")
			So(p.calls, ShouldEqual, 3)
			So(p.retries, ShouldResemble, []int{0, 1, 2})
			So(*delays, ShouldResemble, []time.Duration{
				500 * time.Millisecond,
				1 * time.Second,
			})
		})

		Convey("Should cap the backoff at two seconds", func() {
			p := &fakeProvider{
				name:      "local",
				available: true,
				script:    []error{transientErr("reset")},
			}
			m, delays := newRecordingManager([]Provider{p}, 5)

			_, err := m.Extract(ctx, "https://example.com/v")
			So(err, ShouldNotBeNil)
			So(*delays, ShouldResemble, []time.Duration{
				500 * time.Millisecond,
				1 * time.Second,
				2 * time.Second,
				2 * time.Second,
				2 * time.Second,
			})
		})

		Convey("Should not retry a non-retryable failure", func() {
			p := &fakeProvider{
				name:      "local",
				available: true,
				script: []error{&models.ParsedError{
					Kind:      enums.ErrorKindPrivateVideo,
					Message:   "Private video",
					Retryable: false,
				}},
			}
			m, delays := newRecordingManager([]Provider{p}, 3)

			_, err := m.Extract(ctx, "https://example.com/v")
			So(err, ShouldNotBeNil)
			So(p.calls, ShouldEqual, 1)
			So(*delays, ShouldBeEmpty)
		})

		Convey("Should stop after the second bot wall in a row", func() {
			p := &fakeProvider{
				name:      "local",
				available: true,
				script:    []error{botErr(), botErr(), nil},
			}
			m, _ := newRecordingManager([]Provider{p}, 5)

			_, err := m.Extract(ctx, "https://example.com/v")
			So(err, ShouldNotBeNil)
			So(p.calls, ShouldEqual, 2)
		})

		Convey("Should treat a video with no usable formats as final", func() {
			p := &fakeProvider{
				name:      "local",
				available: true,
				script:    []error{util.ErrNoFormats},
			}
			m, delays := newRecordingManager([]Provider{p}, 3)

			_, err := m.Extract(ctx, "https://example.com/v")
			So(err, ShouldNotBeNil)
			So(p.calls, ShouldEqual, 1)
			So(*delays, ShouldBeEmpty)
		})
	})
}

func TestManagerFallthrough(t *testing.T) {
	Convey("Manager provider fallthrough", t, func() {
		ctx := context.Background()

		Convey("Should skip an unavailable provider without consulting it", func() {
			down := &fakeProvider{name: "remote", available: false}
			up := &fakeProvider{name: "local", available: true, script: []error{nil}}
			m, _ := newRecordingManager([]Provider{down, up}, 3)

			result, err := m.Extract(ctx, "https://example.com/v")
			So(err, ShouldBeNil)
			So(result.Provider, ShouldEqual, "local")
			So(down.calls, ShouldEqual, 0)
		})

		Convey("Should fall through silently when a provider reports itself gone", func() {
			gone := &fakeProvider{
				name:      "remote",
				available: true,
				script:    []error{util.ErrProviderUnavailable},
			}
			up := &fakeProvider{name: "local", available: true, script: []error{nil}}
			m, _ := newRecordingManager([]Provider{gone, up}, 3)

			result, err := m.Extract(ctx, "https://example.com/v")
			So(err, ShouldBeNil)
			So(result.Provider, ShouldEqual, "local")
			So(gone.calls, ShouldEqual, 1)
		})

		Convey("Should try the next provider after the first is exhausted", func() {
			flaky := &fakeProvider{
				name:      "remote",
				available: true,
				script:    []error{transientErr("reset")},
			}
			up := &fakeProvider{name: "local", available: true, script: []error{nil}}
			m, _ := newRecordingManager([]Provider{flaky, up}, 1)

			result, err := m.Extract(ctx, "https://example.com/v")
			So(err, ShouldBeNil)
			So(result.Provider, ShouldEqual, "local")
			So(flaky.calls, ShouldEqual, 2)
		})
	})
}

func TestManagerAggregation(t *testing.T) {
	Convey("Aggregated failure messages", t, func() {
		ctx := context.Background()

		Convey("Should name every provider that failed", func() {
			a := &fakeProvider{
				name:      "remote",
				available: true,
				script:    []error{transientErr("connection reset by peer")},
			}
			b := &fakeProvider{
				name:      "local",
				available: true,
				script: []error{&models.ParsedError{
					Kind:      enums.ErrorKindVideoNotFound,
					Message:   "Video unavailable",
					Retryable: false,
				}},
			}
			m, _ := newRecordingManager([]Provider{a, b}, 0)

			_, err := m.Extract(ctx, "https://example.com/v")
			So(err, ShouldNotBeNil)
			var agg *AggregateError
			So(errors.As(err, &agg), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "[remote]")
			So(err.Error(), ShouldContainSubstring, "[local]")
			So(err.Error(), ShouldContainSubstring, "Suggestions:")
		})

		Convey("Should produce the same message for the same failures", func() {
			run := func() string {
				a := &fakeProvider{
					name:      "remote",
					available: true,
					script:    []error{transientErr("connection reset by peer")},
				}
				m, _ := newRecordingManager([]Provider{a}, 0)
				_, err := m.Extract(ctx, "https://example.com/v")
				return err.Error()
			}
			So(run(), ShouldEqual, run())
		})

		Convey("Should prefer the bot wall message when any provider hit one", func() {
			a := &fakeProvider{
				name:      "local",
				available: true,
				script:    []error{botErr(), botErr()},
			}
			m, _ := newRecordingManager([]Provider{a}, 3)

			_, err := m.Extract(ctx, "https://example.com/v")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "blocking automated access")
			So(strings.ToLower(err.Error()), ShouldContainSubstring, "cookies")
		})

		Convey("Should explain when nothing is configured at all", func() {
			down := &fakeProvider{name: "remote", available: false}
			m, _ := newRecordingManager([]Provider{down}, 3)

			_, err := m.Extract(ctx, "https://example.com/v")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "no extraction provider")
		})
	})
}
