package params

import "fmt"

// TimingType selects which clock a solve is measured and limited by.
type TimingType int

const (
	WallTiming TimingType = iota
	CPUTiming
)

func (t TimingType) String() string {
	switch t {
	case WallTiming:
		return "wall"
	case CPUTiming:
		return "cpu"
	}
	return fmt.Sprintf("timing(%d)", int(t))
}

// PreferredTimingType resolves the timing type from the two limit
// parameters and the platform:
//
//   - both MaxWallSeconds and MaxCPUSeconds set is a configuration
//     conflict, the limits are mutually exclusive;
//   - a CPU limit alone requires CPU time measurement and fails as
//     unsupported when the platform cannot provide it;
//   - otherwise CPU timing is preferred when the platform supports it,
//     wall timing when it does not. The asymmetry buys the more precise
//     measurement where available and degrades gracefully elsewhere.
func (p *Params) PreferredTimingType() (TimingType, error) {
	wallSet := p.IsDoubleSet(MaxWallSeconds)
	cpuSet := p.IsDoubleSet(MaxCPUSeconds)
	if wallSet && cpuSet {
		return WallTiming, &ConflictError{
			Settings: []string{MaxWallSeconds.String(), MaxCPUSeconds.String()},
		}
	}
	supported := p.cpuProbe()
	if cpuSet && !supported {
		return WallTiming, &UnsupportedError{Feature: "cpu time measurement"}
	}
	if supported {
		return CPUTiming, nil
	}
	return WallTiming, nil
}
