package common

import "strconv"

// uniqueMarker separates a colliding name from its counter.
const uniqueMarker = "U"

// MakeUnique returns candidate, or candidate with the first free counter
// suffix ("U1", "U2", ...), and records the result in used.
func MakeUnique(candidate string, used map[string]bool) string {
	name, _ := makeUnique(candidate, used)
	return name
}

func makeUnique(candidate string, used map[string]bool) (string, int) {
	name := candidate
	n := 0
	for used[name] {
		n++
		name = candidate + uniqueMarker + strconv.Itoa(n)
	}
	used[name] = true
	return name, n
}

// UniqueNames makes the camel variant unique within used and carries the
// same counter over to the other variants so all four stay in step.
// Example: a second "Idle" becomes idleU1 / IdleU1 / idle_u1 / idle-u1.
func UniqueNames(names Names, used map[string]bool) Names {
	camel, n := makeUnique(names.Camel, used)
	if n == 0 {
		return names
	}
	counter := strconv.Itoa(n)
	return Names{
		Camel:  camel,
		Pascal: names.Pascal + uniqueMarker + counter,
		Snake:  names.Snake + "_u" + counter,
		Kebab:  names.Kebab + "-u" + counter,
	}
}
