package widget

import "errors"

// ErrSyntax indicates text that matches none of the accepted complex
// number forms.
var ErrSyntax = errors.New("widget: not a complex number")
