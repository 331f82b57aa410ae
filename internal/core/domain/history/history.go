/*
Package history defines core domain entities related to interpreter history.
*/
package history

/*
LineFrequency represents an input line and how many times it was entered.
*/
type LineFrequency struct {
	Line  string
	Count int
}
