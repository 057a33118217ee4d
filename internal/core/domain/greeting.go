package domain

import "fmt"

// Greeting holds the greeter's answers.
type Greeting struct {
	Name string `json:"name"`
	Age  uint32 `json:"age"`
}

// String returns the greeting line.
func (g Greeting) String() string {
	return fmt.Sprintf("hi %s, you are %d years old!", g.Name, g.Age)
}

// Sentence holds a manipulated sentence.
type Sentence struct {
	// Original is the trimmed input.
	Original string `json:"original"`

	// Transformed is Original reversed by code point and upper-cased.
	Transformed string `json:"transformed"`
}

// String returns the manipulator output line.
func (s Sentence) String() string {
	return "your sentence is: " + s.Transformed
}
