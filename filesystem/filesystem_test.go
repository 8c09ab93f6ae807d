package filesystem

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func allowAll() bool { return true }
func denyAll() bool  { return false }

func memFactory() afero.Fs { return afero.NewMemMapFs() }

func TestProviderDefaultMode(t *testing.T) {
	Convey("Given a provider in default mode", t, func() {
		p := New(WithEnvironmentProbe(allowAll))

		Convey("Current should return the same handle on every call", func() {
			first, err := p.Current(context.Background())
			So(err, ShouldBeNil)
			So(first, ShouldNotBeNil)

			second, err := p.Current(WithScope(context.Background()))
			So(err, ShouldBeNil)
			So(second, ShouldEqual, first)
		})

		Convey("The default backend should be constructed at most once under concurrency", func() {
			var (
				constructed atomic.Int64
				wg          sync.WaitGroup
				mu          sync.Mutex
				handles     []afero.Fs
			)

			counted := New(WithDefaultFs(func() afero.Fs {
				constructed.Add(1)
				return afero.NewMemMapFs()
			}))

			for i := 0; i < 32; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					fs, err := counted.Current(WithScope(context.Background()))
					if err != nil {
						return
					}
					mu.Lock()
					handles = append(handles, fs)
					mu.Unlock()
				}()
			}
			wg.Wait()

			So(constructed.Load(), ShouldEqual, 1)
			So(len(handles), ShouldEqual, 32)
			for _, fs := range handles {
				So(fs, ShouldEqual, handles[0])
			}
		})

		Convey("IsInTestMode should report false", func() {
			So(p.IsInTestMode(), ShouldBeFalse)
		})

		Convey("ResetToDefault should be a harmless no-op", func() {
			p.ResetToDefault()
			So(p.IsInTestMode(), ShouldBeFalse)
		})
	})
}

func TestProviderTestMode(t *testing.T) {
	Convey("Given a provider with an installed factory", t, func() {
		p := New(WithEnvironmentProbe(allowAll))
		So(p.SetFileSystemFactory(memFactory), ShouldBeNil)
		So(p.IsInTestMode(), ShouldBeTrue)

		Convey("Each scope should cache its handle across calls", func() {
			ctx := WithScope(context.Background())

			first, err := p.Current(ctx)
			So(err, ShouldBeNil)

			second, err := p.Current(ctx)
			So(err, ShouldBeNil)
			So(second, ShouldEqual, first)
		})

		Convey("Distinct scopes should receive distinct handles", func() {
			one, err := p.Current(WithScope(context.Background()))
			So(err, ShouldBeNil)

			two, err := p.Current(WithScope(context.Background()))
			So(err, ShouldBeNil)
			So(two, ShouldNotEqual, one)
		})

		Convey("Contexts without a scope should share the root slot", func() {
			one, err := p.Current(context.Background())
			So(err, ShouldBeNil)

			two, err := p.Current(context.Background())
			So(err, ShouldBeNil)
			So(two, ShouldEqual, one)
		})

		Convey("The factory should run exactly once per scope", func() {
			var calls atomic.Int64
			So(p.SetFileSystemFactory(func() afero.Fs {
				calls.Add(1)
				return afero.NewMemMapFs()
			}), ShouldBeNil)

			ctx := WithScope(context.Background())
			_, _ = p.Current(ctx)
			_, _ = p.Current(ctx)
			So(calls.Load(), ShouldEqual, 1)

			_, _ = p.Current(WithScope(context.Background()))
			So(calls.Load(), ShouldEqual, 2)
		})

		Convey("A factory producing a nil handle should surface ErrNilHandle", func() {
			So(p.SetFileSystemFactory(func() afero.Fs { return nil }), ShouldBeNil)

			fs, err := p.Current(WithScope(context.Background()))
			So(err, ShouldEqual, ErrNilHandle)
			So(fs, ShouldBeNil)

			// No silent fallback to the default backend either.
			So(p.IsInTestMode(), ShouldBeTrue)
		})
	})
}

func TestSetFileSystemFactoryValidation(t *testing.T) {
	Convey("Given a provider", t, func() {
		Convey("A nil factory should be rejected without changing mode", func() {
			p := New(WithEnvironmentProbe(allowAll))
			So(p.SetFileSystemFactory(nil), ShouldEqual, ErrNilFactory)
			So(p.IsInTestMode(), ShouldBeFalse)
		})

		Convey("With the guard active in production, test mode should be refused", func() {
			p := New(WithEnvironmentProbe(denyAll))
			So(p.SetFileSystemFactory(memFactory), ShouldEqual, ErrProductionEnvironment)
			So(p.IsInTestMode(), ShouldBeFalse)

			fs, err := p.Current(context.Background())
			So(err, ShouldBeNil)
			So(fs, ShouldNotBeNil)
		})

		Convey("With the guard disabled, test mode should succeed regardless of environment", func() {
			p := New(WithProductionGuard(false), WithEnvironmentProbe(denyAll))
			So(p.SetFileSystemFactory(memFactory), ShouldBeNil)
			So(p.IsInTestMode(), ShouldBeTrue)
		})
	})
}

func TestProviderLifecycle(t *testing.T) {
	Convey("Given a provider cycling through default, test, and back", t, func() {
		p := New(WithEnvironmentProbe(allowAll))

		ctxOne := WithScope(context.Background())
		ctxTwo := WithScope(context.Background())

		original, err := p.Current(ctxOne)
		So(err, ShouldBeNil)

		again, err := p.Current(ctxOne)
		So(err, ShouldBeNil)
		So(again, ShouldEqual, original)

		So(p.SetFileSystemFactory(memFactory), ShouldBeNil)

		fakeOne, err := p.Current(ctxOne)
		So(err, ShouldBeNil)
		So(fakeOne, ShouldNotEqual, original)

		fakeTwo, err := p.Current(ctxTwo)
		So(err, ShouldBeNil)
		So(fakeTwo, ShouldNotEqual, fakeOne)

		Convey("State written through one scope's fake should persist within it", func() {
			So(afero.WriteFile(fakeOne, "marker.txt", []byte("present"), 0644), ShouldBeNil)

			repeat, err := p.Current(ctxOne)
			So(err, ShouldBeNil)

			exists, err := afero.Exists(repeat, "marker.txt")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)

			missing, err := afero.Exists(fakeTwo, "marker.txt")
			So(err, ShouldBeNil)
			So(missing, ShouldBeFalse)
		})

		Convey("ResetToDefault should restore the original shared backend to every scope", func() {
			p.ResetToDefault()
			So(p.IsInTestMode(), ShouldBeFalse)

			restoredOne, err := p.Current(ctxOne)
			So(err, ShouldBeNil)
			So(restoredOne, ShouldEqual, original)

			restoredTwo, err := p.Current(ctxTwo)
			So(err, ShouldBeNil)
			So(restoredTwo, ShouldEqual, original)
		})

		Convey("Reinstalling a factory should evict every cached fake", func() {
			So(p.SetFileSystemFactory(memFactory), ShouldBeNil)

			replacement, err := p.Current(ctxOne)
			So(err, ShouldBeNil)
			So(replacement, ShouldNotEqual, fakeOne)
		})
	})
}

func TestDefaultProvider(t *testing.T) {
	Convey("Given the process-wide provider", t, func() {
		previous := Default()
		defer SetDefault(previous)

		SetDefault(New(WithEnvironmentProbe(allowAll)))

		Convey("Package-level operations should proxy to it", func() {
			So(IsInTestMode(), ShouldBeFalse)
			So(SetFileSystemFactory(memFactory), ShouldBeNil)
			So(IsInTestMode(), ShouldBeTrue)

			fs, err := Current(WithScope(context.Background()))
			So(err, ShouldBeNil)
			So(fs.Name(), ShouldEqual, afero.NewMemMapFs().Name())

			ResetToDefault()
			So(IsInTestMode(), ShouldBeFalse)
		})
	})
}
