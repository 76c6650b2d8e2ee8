package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers into random readable names, so that sessions can be
// told apart when printed. It never forgets a name, so it leaks memory for
// every object it is asked about. Only call it from String methods and other
// debugging paths, never once per frame.

var (
	memoLock sync.Mutex
	memo     map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	key := obj
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr, reflect.Chan:
		if value.IsNil() {
			return "Ø"
		}
	case reflect.Map, reflect.Slice, reflect.Func:
		// Not hashable, so key on the address instead
		if value.IsNil() {
			return "Ø"
		}
		key = value.Pointer()
	}

	memoLock.Lock()
	defer memoLock.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[key] = r
	return r
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
