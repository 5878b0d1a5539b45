package header

import "testing"

func TestRecognizeFamilies(t *testing.T) {
	r := NewRecognizer()

	tests := []struct {
		name       string
		text       string
		department string
		family     string
		yearSem    string
		section    string
	}{
		{
			name:    "bracketed",
			text:    "IV SEMESTER [SECTION-A1]",
			family:  "bracketed",
			yearSem: "IV Semester",
			section: "A1",
		},
		{
			name:    "parenthesized with section keyword",
			text:    "VI SEMESTER (SECTION-B2)",
			family:  "parenthesized",
			yearSem: "VI Semester",
			section: "B2",
		},
		{
			name:    "parenthesized bare",
			text:    "VI SEMESTER (B2)",
			family:  "parenthesized",
			yearSem: "VI Semester",
			section: "B2",
		},
		{
			name:    "dash form",
			text:    "II Sem – Section – A2",
			family:  "dash",
			yearSem: "II Semester",
			section: "A2",
		},
		{
			name:    "prose form with separate section token",
			text:    "B.Tech IV Semester\nSection-C1 w.e.f. 01.08.2024",
			family:  "prose",
			yearSem: "IV Semester",
			section: "C1",
		},
		{
			name:       "prose form without section synthesizes from department",
			text:       "B.Tech VIII Semester",
			department: "INFORMATION TECHNOLOGY",
			family:     "prose",
			yearSem:    "VIII Semester",
			section:    "IT-1",
		},
		{
			name:       "bracket-only synthesizes from department",
			text:       "[ III SEMESTER ]",
			department: "COMPUTER SCIENCE AND ENGINEERING",
			family:     "bracket-only",
			yearSem:    "III Semester",
			section:    "CSE-1",
		},
		{
			name:    "generic with section token",
			text:    "VII Sem Section-D1",
			family:  "generic",
			yearSem: "VII Semester",
			section: "D1",
		},
		{
			name:    "generic with bare trailing number",
			text:    "V Sem 2",
			family:  "generic",
			yearSem: "V Semester",
			section: "2",
		},
		{
			name:    "fragmented roman numeral",
			text:    "I V SEMESTER [SECTION-A1]",
			family:  "bracketed",
			yearSem: "IV Semester",
			section: "A1",
		},
		{
			name:    "case-insensitive",
			text:    "iv semester [section-a1]",
			family:  "bracketed",
			yearSem: "IV Semester",
			section: "A1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok := r.Recognize(tt.text, tt.department)
			if !ok {
				t.Fatalf("Recognize(%q) found no match", tt.text)
			}
			if match.Family != tt.family {
				t.Errorf("family = %q, want %q", match.Family, tt.family)
			}
			if match.YearSem != tt.yearSem {
				t.Errorf("YearSem = %q, want %q", match.YearSem, tt.yearSem)
			}
			if match.SectionID != tt.section {
				t.Errorf("SectionID = %q, want %q", match.SectionID, tt.section)
			}
		})
	}
}

// A page matching both the bracketed form and the generic fallback must
// resolve via the bracketed form, which sits earlier in the priority order.
func TestRecognizePriority(t *testing.T) {
	r := NewRecognizer()

	text := "IV SEMESTER [SECTION-A1]\nSection-Z9"
	match, ok := r.Recognize(text, "")
	if !ok {
		t.Fatal("Recognize() found no match")
	}
	if match.Family != "bracketed" {
		t.Errorf("family = %q, want %q", match.Family, "bracketed")
	}
	if match.SectionID != "A1" {
		t.Errorf("SectionID = %q, want bracket-derived %q", match.SectionID, "A1")
	}
}

func TestRecognizeNoMatch(t *testing.T) {
	r := NewRecognizer()

	if _, ok := r.Recognize("FACULTY NAME AND LOAD DISTRIBUTION", ""); ok {
		t.Error("Recognize() matched non-header text")
	}

	// A semester tag with no section indicator must not satisfy the
	// generic fallback.
	if _, ok := r.Recognize("IV SEMESTER RESULTS DECLARED", ""); ok {
		t.Error("Recognize() matched a semester tag with no section")
	}
}

func TestDepartment(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
		ok   bool
	}{
		{"plain", "DEPARTMENT OF COMPUTER SCIENCE AND ENGINEERING", "COMPUTER SCIENCE AND ENGINEERING", true},
		{"trailing keyword", "DEPARTMENT OF CIVIL ENGINEERING TIME TABLE 2024", "CIVIL ENGINEERING", true},
		{"line break", "DEPARTMENT OF PHYSICS\nIV SEMESTER", "PHYSICS", true},
		{"not a department line", "IV SEMESTER [SECTION-A1]", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Department(tt.line)
			if ok != tt.ok {
				t.Fatalf("Department(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Department(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestDefaultRoom(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
		ok   bool
	}{
		{"with dot", "Room No. 803", "803", true},
		{"with colon", "Room No: 2852", "2852", true},
		{"space-split digits rejoined", "Room No. 80 3", "803", true},
		{"named room fallback", "Room CC Lab", "CC Lab", true},
		{"no room", "IV SEMESTER [SECTION-A1]", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DefaultRoom(tt.line)
			if ok != tt.ok {
				t.Fatalf("DefaultRoom(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("DefaultRoom(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"COMPUTER SCIENCE AND ENGINEERING", "CSE"},
		{"INFORMATION TECHNOLOGY", "IT"},
		{"ELECTRONICS & COMMUNICATION ENGINEERING", "ECE"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Abbreviate(tt.in); got != tt.want {
			t.Errorf("Abbreviate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
