package markdown

// InInlineCode exports inInlineCode for testing.
var InInlineCode = inInlineCode //nolint:gochecknoglobals // test export

// IsIllustrative exports isIllustrative for testing.
var IsIllustrative = isIllustrative //nolint:gochecknoglobals // test export

// InGitHubLink exports inGitHubLink for testing.
var InGitHubLink = inGitHubLink //nolint:gochecknoglobals // test export

// UnderExemptPath exports underExemptPath for testing.
var UnderExemptPath = underExemptPath //nolint:gochecknoglobals // test export
