// Package fixtures provides random test data helpers for the tuples packages.
package fixtures

import (
	"crypto/rand"
	mrand "math/rand"
	"sync"
	"time"

	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
)

var rnd = mrand.New(mrand.NewSource(time.Now().Unix()))

var mutex sync.Mutex

// RandomName returns a randomly generated silly name.
func RandomName() string {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.SillyName()
}

// RandomString returns a random alphanumerical string with the given length.
func RandomString(length int) string {
	const letters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

	bytes := make([]byte, length)

	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}

	for i, b := range bytes {
		bytes[i] = letters[b%byte(len(letters))]
	}

	return string(bytes)
}

// RandomUUID returns a random (v4) UUID in its canonical text form.
func RandomUUID() string {
	return uuid.NewV4().String()
}

// RandomIntn returns, as an int, a non-negative pseudo-random number in [0,n).
// It panics if n <= 0.
func RandomIntn(n int) int {
	mutex.Lock()
	defer mutex.Unlock()
	return rnd.Intn(n)
}

// RandomElementFromSlice returns a pseudo-randomly chosen element of the slice.
// It panics on an empty slice.
func RandomElementFromSlice[T any](slice []T) T {
	return slice[RandomIntn(len(slice))]
}
