package command

import (
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr bool
	}{
		{
			"initialize",
			"Initialize(3)",
			Command{Op: OpInitialize, Args: []int{3}},
			false,
		},
		{
			"submit with spaces",
			"SubmitFlight( 1 , 10 , 0 , 5 , 10 )",
			Command{Op: OpSubmitFlight, Args: []int{1, 10, 0, 5, 10}},
			false,
		},
		{
			"negative argument",
			"Initialize(-1)",
			Command{Op: OpInitialize, Args: []int{-1}},
			false,
		},
		{
			"no-arg command",
			"PrintActive()",
			Command{Op: OpPrintActive},
			false,
		},
		{
			"quit",
			"Quit()",
			Command{Op: OpQuit},
			false,
		},
		{
			"extra arguments tolerated",
			"Tick(5, 99)",
			Command{Op: OpTick, Args: []int{5, 99}},
			false,
		},
		{"unknown command", "Explode(1)", Command{}, true},
		{"missing paren", "Initialize 3", Command{}, true},
		{"unterminated", "Initialize(3", Command{}, true},
		{"non-integer argument", "Initialize(three)", Command{}, true},
		{"too few arguments", "SubmitFlight(1, 2)", Command{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
