package trace

type (
	// Guard specifies trace of guarded value activity.
	//
	// Every hook follows the start/done convention: the hook is called
	// when the operation starts and may return a non nil closure to be
	// called when the operation finishes. For scope-bound acquisitions
	// (OnRead, OnWrite) the start hook fires before the lock is taken,
	// so blocking time is observable, and the done closure fires when
	// the guard releases.
	Guard struct {
		OnGet    func(GuardGetStartInfo) func(GuardGetDoneInfo)
		OnSet    func(GuardSetStartInfo) func(GuardSetDoneInfo)
		OnChange func(GuardChangeStartInfo) func(GuardChangeDoneInfo)
		OnRead   func(GuardReadStartInfo) func(GuardReadDoneInfo)
		OnWrite  func(GuardWriteStartInfo) func(GuardWriteDoneInfo)
	}
	GuardGetStartInfo struct {
		// Label is the container name as set with the WithLabel option.
		Label string
	}
	GuardGetDoneInfo struct{}
	GuardSetStartInfo struct {
		Label string
	}
	GuardSetDoneInfo struct{}
	GuardChangeStartInfo struct {
		Label string
	}
	GuardChangeDoneInfo struct{}
	GuardReadStartInfo struct {
		Label string
	}
	GuardReadDoneInfo struct {
		// Transferred reports that the release came from a guard
		// produced by Transfer rather than the originally acquired one.
		Transferred bool
	}
	GuardWriteStartInfo struct {
		Label string
	}
	GuardWriteDoneInfo struct {
		Transferred bool
	}
)
