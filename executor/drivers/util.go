// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drivers

import (
	"reflect"
	"strings"
	"sync"

	"github.com/33cn/riddlerush/types"
)

var (
	methodCache   = make(map[reflect.Type]map[string]reflect.Method)
	methodCacheMu sync.Mutex
	messageType   = reflect.TypeOf((*types.Message)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
)

// ListMethod 列出 Query_ 开头并且签名是 func(*T) (types.Message, error) 的方法
func ListMethod(obj interface{}) map[string]reflect.Method {
	return listQueryMethod(reflect.TypeOf(obj))
}

func listQueryMethod(ty reflect.Type) map[string]reflect.Method {
	methodCacheMu.Lock()
	defer methodCacheMu.Unlock()
	if methods, ok := methodCache[ty]; ok {
		return methods
	}
	methods := make(map[string]reflect.Method)
	for i := 0; i < ty.NumMethod(); i++ {
		m := ty.Method(i)
		if !strings.HasPrefix(m.Name, "Query_") {
			continue
		}
		mt := m.Type
		if mt.NumIn() != 2 || mt.NumOut() != 2 {
			continue
		}
		if mt.In(1).Kind() != reflect.Ptr || !mt.In(1).Implements(messageType) {
			continue
		}
		if mt.Out(0) != messageType || mt.Out(1) != errorType {
			continue
		}
		methods[strings.TrimPrefix(m.Name, "Query_")] = m
	}
	methodCache[ty] = methods
	return methods
}

func queryMethod(ty reflect.Type, funcName string) (reflect.Method, bool) {
	m, ok := listQueryMethod(ty)[funcName]
	return m, ok
}
