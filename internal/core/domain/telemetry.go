package domain

// Phase is the step a fetch task is currently in.
type Phase string

const (
	// PhaseSearchingCache indicates the task is checking the download cache.
	PhaseSearchingCache Phase = "searching-cache"
	// PhaseResuming indicates a partial download is being continued.
	PhaseResuming Phase = "resuming"
	// PhaseDownloading indicates bytes are being transferred.
	PhaseDownloading Phase = "downloading"
	// PhaseVerifying indicates the checksum is being computed or compared.
	PhaseVerifying Phase = "verifying"
	// PhaseUnpacking indicates the archive is being staged.
	PhaseUnpacking Phase = "unpacking"
	// PhaseDone indicates the task finished successfully.
	PhaseDone Phase = "done"
)

// String returns the phase name.
func (p Phase) String() string {
	return string(p)
}

// PackageStatus represents the lifecycle state of a package in a fetch run.
type PackageStatus string

const (
	// StatusPending indicates the package has not been scheduled yet.
	StatusPending PackageStatus = "pending"
	// StatusRunning indicates the package is being fetched or staged.
	StatusRunning PackageStatus = "running"
	// StatusCompleted indicates the package was downloaded and staged.
	StatusCompleted PackageStatus = "completed"
	// StatusCached indicates the archive was served from the cache and staged.
	StatusCached PackageStatus = "cached"
	// StatusFailed indicates the package failed.
	StatusFailed PackageStatus = "failed"
)

// IsTerminal checks if a status is a terminal state (Completed, Cached, Failed).
func (s PackageStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCached, StatusFailed:
		return true
	default:
		return false
	}
}
