package assemble

import (
	"errors"
	"reflect"
	"testing"
)

func TestAssemble(t *testing.T) {
	// overlapping error-free reads over a genome with no repeated
	// 4-mers rebuild the genome as the single contig
	genome := "ACGGTCATTGCC"
	reads := []string{
		genome[0:8],
		genome[2:10],
		genome[4:12],
	}

	contigs, err := Assemble(reads, 5)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	want := []string{genome}
	if !reflect.DeepEqual(contigs, want) {
		t.Errorf("Assemble() = %v, want %v", contigs, want)
	}
}

func TestAssemble_empty(t *testing.T) {
	contigs, err := Assemble(nil, 4)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if len(contigs) != 0 {
		t.Errorf("Assemble() = %v, want no contigs", contigs)
	}
}

// two runs over the same reads are byte-identical
func TestAssemble_deterministic(t *testing.T) {
	reads := []string{"ACGGTCATT", "GTCATTGCC", "CATTACGGT"}

	first, err := Assemble(reads, 5)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	second, err := Assemble(reads, 5)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Assemble() runs differ: %v vs %v", first, second)
	}
}

func TestAssemble_validation(t *testing.T) {
	type args struct {
		reads []string
		k     int
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			"k below 2",
			args{[]string{"ACGT"}, 1},
			ErrKmerLength,
		},
		{
			"k above the shortest read",
			args{[]string{"ACGTACGT", "ACG"}, 4},
			ErrKmerLength,
		},
		{
			"character outside ACGT",
			args{[]string{"ACGN"}, 2},
			ErrAlphabet,
		},
		{
			"lowercase rejected",
			args{[]string{"acgt"}, 2},
			ErrAlphabet,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.args.reads, tt.args.k)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Assemble() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
