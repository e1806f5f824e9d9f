package dbg

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for pointers. Map items and half-edges print as names like
// "SmilingWalrus" instead of addresses, which makes neighbor dumps and DAG
// drawings much easier to follow. Names are handed out lazily and never
// forgotten, so only use this while debugging or in String methods. In log
// calls, use LogName so nothing is named unless the record is emitted.

var (
	mu    sync.Mutex
	names = map[any]string{}
)

func init() {
	// Names depend on the order they're requested in, so a name means nothing
	// across runs. Making them random every run is a reminder of that.
	petname.NonDeterministicMode()
}

func Name(obj any) string {
	if isNil(obj) {
		return "Ø"
	}
	mu.Lock()
	defer mu.Unlock()
	if name, ok := names[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	names[obj] = name
	return name
}

// Forget all names. Tests that compare printed structures use this.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	names = map[any]string{}
}

type lazyName struct {
	obj any
}

func (n lazyName) LogValue() slog.Value {
	return slog.StringValue(Name(n.obj))
}

// The name of obj as a log attribute value, only looked up if a handler
// actually wants it.
func LogName(obj any) slog.LogValuer {
	return lazyName{obj}
}

func isNil(obj any) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
