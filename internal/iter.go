package internal

import (
	"iter"
)

// Concat concatenates multiple sequences into a single sequence.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Repeat yields value count times. A negative count yields nothing.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range max(count, 0) {
			if !yield(value) {
				return
			}
		}
	}
}
