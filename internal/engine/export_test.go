package engine

// SetSequenceEditor overrides how the rebase sequence editor command is
// built, so tests can substitute a plain `cp` for the re-exec of the
// gitshift binary.
func (e *Engine) SetSequenceEditor(fn func(planPath string) (string, error)) {
	e.sequenceEditor = fn
}
