package section

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Task #tags: cicd", []string{"cicd"}},
		{"Task #tags: cicd,infra,aws", []string{"cicd", "infra", "aws"}},
		{"Task #tags:  cicd , infra,  aws ", []string{"cicd", "infra", "aws"}},
		{"Task #tags: a,,b, ,", []string{"a", "b"}},
		{"Task #tags: CICD", []string{"CICD"}},
		{"Task without tags", []string{}},
		{"Task #tags:", []string{}},
		{"Task #tags:   ", []string{}},
		{"see #tags: old then #tags: new", []string{"new"}},
	}
	for _, tc := range cases {
		got := ParseTags(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseTags(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatWithTags(t *testing.T) {
	cases := []struct {
		text string
		tags []string
		want string
	}{
		{"Task", []string{"cicd", "infra"}, "Task #tags: cicd,infra"},
		{"Task", []string{"cicd"}, "Task #tags: cicd"},
		{"Task", nil, "Task"},
		{"Task", []string{}, "Task"},
		{"Task", []string{"b", "a", "b"}, "Task #tags: b,a,b"},
	}
	for _, tc := range cases {
		if got := FormatWithTags(tc.text, tc.tags); got != tc.want {
			t.Errorf("FormatWithTags(%q, %v) = %q, want %q", tc.text, tc.tags, got, tc.want)
		}
	}
}

func TestTagRoundTrip(t *testing.T) {
	for _, tags := range [][]string{{"a"}, {"t1", "t2"}, {"AWS", "ci-cd", "x_y"}} {
		got := ParseTags(FormatWithTags("deploy the thing", tags))
		if !reflect.DeepEqual(got, tags) {
			t.Errorf("round trip %v = %v", tags, got)
		}
	}
}

func TestFilterByTags(t *testing.T) {
	bullets := []string{
		"Task 1 #tags: cicd",
		"Task 2 #tags: infra",
		"Task 3 #tags: cicd,aws",
		"Task 4",
	}

	got := FilterByTags(bullets, []string{"cicd"})
	if !reflect.DeepEqual(got, []string{"Task 1 #tags: cicd", "Task 3 #tags: cicd,aws"}) {
		t.Errorf("single tag = %v", got)
	}

	got = FilterByTags(bullets, []string{"infra", "aws"})
	if !reflect.DeepEqual(got, []string{"Task 2 #tags: infra", "Task 3 #tags: cicd,aws"}) {
		t.Errorf("multiple tags = %v", got)
	}

	if got = FilterByTags(bullets, []string{"nope"}); len(got) != 0 {
		t.Errorf("no match = %v", got)
	}
}

func TestFilterByTags_CaseInsensitive(t *testing.T) {
	got := FilterByTags([]string{"Task #tags: CICD", "Other #tags: infra"}, []string{"cicd"})
	if !reflect.DeepEqual(got, []string{"Task #tags: CICD"}) {
		t.Errorf("got %v", got)
	}
	got = FilterByTags([]string{"Task #tags: cicd"}, []string{"CiCd"})
	if len(got) != 1 {
		t.Errorf("mixed-case query = %v", got)
	}
}

func TestFilterByTags_EmptyIsIdentity(t *testing.T) {
	bullets := []string{"a #tags: x", "b"}
	got := FilterByTags(bullets, nil)
	if &got[0] != &bullets[0] || len(got) != len(bullets) {
		t.Error("empty filter must return the input slice")
	}
	if got := FilterByTags(bullets, []string{}); len(got) != 2 {
		t.Errorf("empty slice filter = %v", got)
	}
}

func TestFilterByTags_KeepsDuplicates(t *testing.T) {
	bullets := []string{"dup #tags: x", "dup #tags: x"}
	if got := FilterByTags(bullets, []string{"x"}); len(got) != 2 {
		t.Errorf("duplicates = %v", got)
	}
}

func TestParseTagList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a, b,,c", []string{"a", "b", "c"}},
		{" cicd ", []string{"cicd"}},
		{"", nil},
		{" , ,", nil},
	}
	for _, tc := range cases {
		if got := ParseTagList(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseTagList(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}
