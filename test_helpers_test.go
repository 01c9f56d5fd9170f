package enumap

import "fmt"

// Fruit is the text-enabled test domain: four values with lower-cased
// names, the shape enumgen emits.
type Fruit int

const (
	Orange Fruit = iota
	Banana
	Grape
	Apple
)

const numFruit = 4

var fruitNames = [numFruit]string{"orange", "banana", "grape", "apple"}

func (f Fruit) Index() int { return int(f) }

func (Fruit) FromIndex(i int) (Fruit, bool) { return FromIndex[Fruit](i, numFruit) }

func (Fruit) Len() int { return numFruit }

func (f Fruit) String() string {
	if f < 0 || f >= numFruit {
		return fmt.Sprintf("Fruit(%d)", int(f))
	}
	return fruitNames[f]
}

func (f Fruit) MarshalText() ([]byte, error) {
	if f < 0 || f >= numFruit {
		return nil, fmt.Errorf("invalid Fruit: %d", int(f))
	}
	return []byte(fruitNames[f]), nil
}

func (f *Fruit) UnmarshalText(text []byte) error {
	for i, name := range fruitNames {
		if name == string(text) {
			*f = Fruit(i)
			return nil
		}
	}
	return fmt.Errorf("unknown Fruit: %q", text)
}

// Weekday is the plain test domain: integer-backed, no text methods.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (d Weekday) Index() int { return int(d) }

func (Weekday) FromIndex(i int) (Weekday, bool) { return FromIndex[Weekday](i, 7) }

func (Weekday) Len() int { return 7 }

// gapEnum constructs no value at index 1.
type gapEnum int

func (g gapEnum) Index() int { return int(g) }

func (gapEnum) FromIndex(i int) (gapEnum, bool) {
	if i == 1 {
		return 0, false
	}
	return FromIndex[gapEnum](i, 3)
}

func (gapEnum) Len() int { return 3 }

// skewEnum reports the wrong position for its middle value.
type skewEnum int

func (s skewEnum) Index() int {
	if s == 1 {
		return 2
	}
	return int(s)
}

func (skewEnum) FromIndex(i int) (skewEnum, bool) { return FromIndex[skewEnum](i, 3) }

func (skewEnum) Len() int { return 3 }

// overEnum keeps constructing values past its declared Len.
type overEnum int

func (o overEnum) Index() int { return int(o) }

func (overEnum) FromIndex(i int) (overEnum, bool) { return FromIndex[overEnum](i, 4) }

func (overEnum) Len() int { return 3 }
