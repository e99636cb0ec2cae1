package xresolve

import (
	"testing"

	"github.com/omeyang/xoui/pkg/oui/xoui"
)

// keyTable 对任何键都命中，返回键本身
type keyTable struct{}

func (keyTable) Lookup(key string) (string, bool) { return key, true }

func FuzzName(f *testing.F) {
	for _, s := range []string{"00CDFE", "48:50:73", "00-10-e0#x", "", "zz", "00::11:22"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, addr string) {
		key, ok := Name(keyTable{}, addr)
		if !ok {
			return
		}
		o, err := xoui.ParseKey(key)
		if err != nil {
			t.Fatalf("Name(%q) produced non-canonical key %q", addr, key)
		}
		b := o.Bytes()
		if viaBytes, _ := NameBytes(keyTable{}, b[:]); viaBytes != key {
			t.Fatalf("bytes form %q disagrees with text form %q", viaBytes, key)
		}
	})
}
