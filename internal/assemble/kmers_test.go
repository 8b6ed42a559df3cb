package assemble

import (
	"reflect"
	"testing"
)

func TestKmers(t *testing.T) {
	type args struct {
		read string
		k    int
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{
			"every window in read order",
			args{"ACGTACGTAC", 4},
			[]string{"ACGT", "CGTA", "GTAC", "TACG", "ACGT", "CGTA", "GTAC"},
		},
		{
			"k equals read length",
			args{"ACGT", 4},
			[]string{"ACGT"},
		},
		{
			"k longer than read",
			args{"ACG", 4},
			nil,
		},
		{
			"single characters",
			args{"ACGT", 1},
			[]string{"A", "C", "G", "T"},
		},
		{
			"empty read",
			args{"", 3},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kmers(tt.args.read, tt.args.k); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Kmers() = %v, want %v", got, tt.want)
			}
		})
	}
}

// the number of k-mers in a read of length L is max(0, L-k+1)
func TestKmers_count(t *testing.T) {
	reads := []string{"A", "ACGT", "ACGTACGT", "TTTTTTTTTTTTTTTT"}

	for _, read := range reads {
		for k := 1; k <= len(read)+2; k++ {
			want := len(read) - k + 1
			if want < 0 {
				want = 0
			}

			if got := len(Kmers(read, k)); got != want {
				t.Errorf("len(Kmers(%q, %d)) = %d, want %d", read, k, got, want)
			}
		}
	}
}
