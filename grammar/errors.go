package grammar

import "github.com/dekarrin/lrlazy/internal/lrerrors"

func constructionErrorf(format string, a ...interface{}) error {
	return lrerrors.Construction(format, a...)
}
