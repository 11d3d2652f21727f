/*
Package profile starts a runtime or frame-timing profile for the lifetime
of a collection window.

Runtime profiles are written by github.com/pkg/profile. Frame timings are
recorded per frame by gioui.org/x/profiling into a CSV file.
*/
package profile

import (
	"fmt"
	"log"
	"strings"

	"gioui.org/layout"
	"gioui.org/x/profiling"
	"github.com/pkg/profile"
)

// Kind names a profile. It implements flag.Value.
type Kind string

const (
	None      Kind = "none"
	CPU       Kind = "cpu"
	Memory    Kind = "mem"
	Block     Kind = "block"
	Goroutine Kind = "goroutine"
	Mutex     Kind = "mutex"
	Trace     Kind = "trace"
	Frames    Kind = "gio"
)

var runtimeModes = map[Kind]func(*profile.Profile){
	CPU:       profile.CPUProfile,
	Memory:    profile.MemProfile,
	Block:     profile.BlockProfile,
	Goroutine: profile.GoroutineProfile,
	Mutex:     profile.MutexProfile,
	Trace:     profile.TraceProfile,
}

// Kinds lists every accepted profile name.
func Kinds() []Kind {
	return []Kind{None, CPU, Memory, Block, Goroutine, Mutex, Trace, Frames}
}

func (k Kind) String() string {
	if k == "" {
		return string(None)
	}
	return string(k)
}

// Set parses a profile name, rejecting unknown ones.
func (k *Kind) Set(s string) error {
	for _, known := range Kinds() {
		if strings.EqualFold(s, string(known)) {
			*k = known
			return nil
		}
	}
	return fmt.Errorf("unknown profile %q", s)
}

// Profiler runs one profile. The zero value profiles nothing.
type Profiler struct {
	Kind Kind
	// Path is the directory runtime profiles are written to. Empty means
	// the working directory.
	Path string

	stop   func()
	frames *profiling.CSVTimingRecorder
}

// New returns a profiler of the given kind.
func New(kind Kind) *Profiler {
	return &Profiler{Kind: kind}
}

// Start begins profiling. Starting a frame profile can fail, in which case
// the failure is logged and frames go unrecorded.
func (p *Profiler) Start() {
	if p.stop != nil {
		return
	}
	if mode, ok := runtimeModes[p.Kind]; ok {
		opts := []func(*profile.Profile){mode, profile.NoShutdownHook}
		if p.Path != "" {
			opts = append(opts, profile.ProfilePath(p.Path))
		}
		p.stop = profile.Start(opts...).Stop
		return
	}
	if p.Kind != Frames {
		p.stop = func() {}
		return
	}
	recorder, err := profiling.NewRecorder(nil)
	if err != nil {
		log.Printf("starting frame profile: %v", err)
		p.stop = func() {}
		return
	}
	p.frames = recorder
	p.stop = func() {
		if err := recorder.Stop(); err != nil {
			log.Printf("stopping frame profile: %v", err)
		}
	}
}

// Stop ends profiling and flushes the profile. Stopping a stopped profiler
// does nothing.
func (p *Profiler) Stop() {
	if p.stop == nil {
		return
	}
	p.stop()
	p.stop = nil
	p.frames = nil
}

// Record records the timings of the frame being laid out when profiling
// frames.
func (p *Profiler) Record(gtx layout.Context) {
	if p.frames != nil {
		p.frames.Profile(gtx)
	}
}
