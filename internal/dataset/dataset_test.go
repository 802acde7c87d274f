// ABOUTME: Tests for CSV loading of the reference tables
// ABOUTME: Covers embedded defaults, header lookup, missing columns and bad prices

package dataset

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
)

func validFS() fstest.MapFS {
	return fstest.MapFS{
		IntentsFile: {Data: []byte("text,intent\nhello there,greeting\nbuy,transaction\n")},
		FAQFile:     {Data: []byte("Question,Answer\nwhat is milk,\"Milk is a white liquid, produced by mammals.\"\n")},
		GroceriesFile: {Data: []byte(
			"Member_number,Date,itemDescription,Price\n" +
				"1,01-01-2015,whole milk,1.00\n" +
				"2,02-01-2015,brown bread,2.5\n")},
	}
}

func TestLoadFS(t *testing.T) {
	t.Parallel()

	c, err := LoadFS(context.Background(), validFS())
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}

	if len(c.Intents) != 2 || c.Intents[0] != (IntentExample{Text: "hello there", Intent: "greeting"}) {
		t.Errorf("Intents = %+v", c.Intents)
	}
	if len(c.FAQ) != 1 || c.FAQ[0].Answer != "Milk is a white liquid, produced by mammals." {
		t.Errorf("FAQ = %+v", c.FAQ)
	}
	want := GroceryRow{MemberID: "2", Date: "02-01-2015", Item: "brown bread", Price: 2.5}
	if len(c.Groceries) != 2 || c.Groceries[1] != want {
		t.Errorf("Groceries[1] = %+v; want %+v", c.Groceries, want)
	}
}

func TestLoadFS_ColumnOrderIndependent(t *testing.T) {
	t.Parallel()

	fsys := validFS()
	fsys[GroceriesFile] = &fstest.MapFile{Data: []byte("Price,itemDescription,Member_number\n0.5,soda,7\n")}

	c, err := LoadFS(context.Background(), fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if got := c.Groceries[0]; got.Item != "soda" || got.Price != 0.5 || got.MemberID != "7" || got.Date != "" {
		t.Errorf("Groceries[0] = %+v", got)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		data    string
		wantErr error
	}{
		{"missing intent column", IntentsFile, "text,label\nhi,greeting\n", ErrMissingColumn},
		{"missing answer column", FAQFile, "Question\nwhy\n", ErrMissingColumn},
		{"missing price column", GroceriesFile, "Member_number,itemDescription\n1,milk\n", ErrMissingColumn},
		{"bad price", GroceriesFile, "Member_number,itemDescription,Price\n1,milk,cheap\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fsys := validFS()
			fsys[tt.file] = &fstest.MapFile{Data: []byte(tt.data)}

			_, err := LoadFS(context.Background(), fsys)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFS_MissingFile(t *testing.T) {
	t.Parallel()

	fsys := validFS()
	delete(fsys, FAQFile)
	if _, err := LoadFS(context.Background(), fsys); err == nil {
		t.Fatal("expected error for missing faq file")
	}
}

func TestLoad_Embedded(t *testing.T) {
	t.Parallel()

	c, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load embedded: %v", err)
	}
	if len(c.Intents) == 0 || len(c.FAQ) == 0 || len(c.Groceries) == 0 {
		t.Fatalf("embedded tables empty: %d/%d/%d", len(c.Intents), len(c.FAQ), len(c.Groceries))
	}
	if len(c.IntentTexts()) != len(c.Intents) || len(c.Questions()) != len(c.FAQ) || len(c.ItemNames()) != len(c.Groceries) {
		t.Error("text accessors must return one entry per row")
	}
}
