package trace

// Invokers below are the entry points used by the container. They
// tolerate nil hooks and nil done closures, so callers can always invoke
// the returned function.

func GuardOnGet(t *Guard, label string) func() {
	onStart := t.OnGet
	var onDone func(GuardGetDoneInfo)
	if onStart != nil {
		onDone = onStart(GuardGetStartInfo{Label: label})
	}
	if onDone == nil {
		onDone = func(GuardGetDoneInfo) {}
	}

	return func() {
		onDone(GuardGetDoneInfo{})
	}
}

func GuardOnSet(t *Guard, label string) func() {
	onStart := t.OnSet
	var onDone func(GuardSetDoneInfo)
	if onStart != nil {
		onDone = onStart(GuardSetStartInfo{Label: label})
	}
	if onDone == nil {
		onDone = func(GuardSetDoneInfo) {}
	}

	return func() {
		onDone(GuardSetDoneInfo{})
	}
}

func GuardOnChange(t *Guard, label string) func() {
	onStart := t.OnChange
	var onDone func(GuardChangeDoneInfo)
	if onStart != nil {
		onDone = onStart(GuardChangeStartInfo{Label: label})
	}
	if onDone == nil {
		onDone = func(GuardChangeDoneInfo) {}
	}

	return func() {
		onDone(GuardChangeDoneInfo{})
	}
}

func GuardOnRead(t *Guard, label string) func(transferred bool) {
	onStart := t.OnRead
	var onDone func(GuardReadDoneInfo)
	if onStart != nil {
		onDone = onStart(GuardReadStartInfo{Label: label})
	}
	if onDone == nil {
		onDone = func(GuardReadDoneInfo) {}
	}

	return func(transferred bool) {
		onDone(GuardReadDoneInfo{Transferred: transferred})
	}
}

func GuardOnWrite(t *Guard, label string) func(transferred bool) {
	onStart := t.OnWrite
	var onDone func(GuardWriteDoneInfo)
	if onStart != nil {
		onDone = onStart(GuardWriteStartInfo{Label: label})
	}
	if onDone == nil {
		onDone = func(GuardWriteDoneInfo) {}
	}

	return func(transferred bool) {
		onDone(GuardWriteDoneInfo{Transferred: transferred})
	}
}
