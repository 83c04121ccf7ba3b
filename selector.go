package clipling

// SelectTarget picks the translation target for a piece of text.
//
// src is the detected language of the text (LanguageUnknown when detection
// failed), primary and secondary are the user's configured languages, and
// last is the most recently chosen target (LanguageUnknown when there is no
// history).
//
// Rules, first match wins:
//
//  1. Source differs from primary: translate into primary. Anything foreign
//     goes into the user's main language. A failed detection counts as
//     foreign, so unknown sources also land here.
//  2. Source is the primary language and the last target was a real choice
//     (valid and different from primary): repeat it.
//  3. Otherwise fall back to secondary.
//
// The function is pure and always returns one of primary, secondary or
// last. It never writes session state; persisting the result is the
// caller's job.
func SelectTarget(src, primary, secondary, last Language) (Language, error) {
	if !primary.Valid() {
		return LanguageUnknown, &InvalidArgumentError{Param: "primary", Value: string(primary)}
	}
	if !secondary.Valid() {
		return LanguageUnknown, &InvalidArgumentError{Param: "secondary", Value: string(secondary)}
	}

	if src != primary {
		return primary, nil
	}
	if last.Valid() && last != primary {
		return last, nil
	}
	return secondary, nil
}
