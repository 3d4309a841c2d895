// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store_test

import (
	"sort"
	"testing"

	"github.com/bitmark-inc/eloarg/store"
)

func TestShortList(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doStore(t, addList)
}

// to make sure that lots of duplicates do not increment the slot
// count incorrectly
func TestDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"1720", "0506", "8382", "6774", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doStore(t, addList)
}

func TestLongList(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
	}
	doStore(t, addList)
}

// add all keys then check count, membership and traversal order
func doStore(t *testing.T, addList []string) {

	p := store.New()

	if !p.IsEmpty() {
		t.Fatalf("new store is not empty")
	}

	unique := make(map[string]struct{})
	for i, key := range addList {
		p.Set(key, i)
		unique[key] = struct{}{}
	}

	if p.Count() != len(unique) {
		t.Errorf("store count: %d  expected: %d", p.Count(), len(unique))
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	actual := make([]string, 0, p.Count())
	p.Range(func(key string, value interface{}) bool {
		actual = append(actual, key)
		return true
	})

	if len(actual) != len(expected) {
		t.Fatalf("traversal length: %d  expected: %d", len(actual), len(expected))
	}
	for i, key := range expected {
		if actual[i] != key {
			t.Errorf("traversal[%d]: %q  expected: %q", i, actual[i], key)
		}
	}

	for _, key := range addList {
		if !p.Has(key) {
			t.Errorf("missing key: %q", key)
		}
	}
	if p.Has("no-such-key") {
		t.Errorf("unexpected key was found")
	}
}

// duplicate Set must overwrite the stored value
func TestOverwrite(t *testing.T) {
	p := store.New()

	p.Set("alpha", 1)
	p.Set("beta", 2)
	p.Set("alpha", 99)

	if 2 != p.Count() {
		t.Fatalf("store count: %d  expected: 2", p.Count())
	}

	value, ok := p.Get("alpha")
	if !ok {
		t.Fatalf("missing key: alpha")
	}
	if 99 != value.(int) {
		t.Errorf("value: %v  expected: 99", value)
	}
}

func TestRangeEarlyStop(t *testing.T) {
	p := store.New()
	for _, key := range []string{"c", "a", "d", "b"} {
		p.Set(key, key)
	}

	visited := []string{}
	p.Range(func(key string, value interface{}) bool {
		visited = append(visited, key)
		return "b" != key
	})

	if 2 != len(visited) || "a" != visited[0] || "b" != visited[1] {
		t.Errorf("early stop visited: %v  expected: [a b]", visited)
	}
}

func TestFinalise(t *testing.T) {
	p := store.New()
	p.Set("one", 1)
	p.Set("two", 2)

	p.Finalise()
	if !p.IsEmpty() || 0 != p.Count() {
		t.Errorf("store not empty after finalise")
	}

	// second finalise is a no-op
	p.Finalise()
	if _, ok := p.Get("one"); ok {
		t.Errorf("key survived finalise")
	}
}
