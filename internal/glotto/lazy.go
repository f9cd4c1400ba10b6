//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package glotto

import (
	"sync"
)

// LazyCatalog - a Catalog that is not read from disk until the first lookup; paired with a Cache
// a run that only needs cached languoids never opens the export at all
type LazyCatalog struct {
	path   string
	once   sync.Once
	cat    *Catalog
	err    error
	onload func(c *Catalog)
}

// NewLazyCatalog - 'onload' (may be nil) is called once the export has been read
func NewLazyCatalog(path string, onload func(c *Catalog)) *LazyCatalog {
	return &LazyCatalog{path: path, onload: onload}
}

// Loaded - has the export been read yet?
func (l *LazyCatalog) Loaded() bool {
	return l.cat != nil
}

func (l *LazyCatalog) Resolve(code string) (Languoid, error) {
	if code == "" {
		return Languoid{}, ErrNoCode
	}
	l.once.Do(func() {
		l.cat, l.err = LoadCatalog(l.path)
		if l.err == nil && l.onload != nil {
			l.onload(l.cat)
		}
	})
	if l.err != nil {
		return Languoid{}, l.err
	}
	return l.cat.Resolve(code)
}
