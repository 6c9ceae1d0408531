package textproc

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "大家好", "大家好"},
		{"square bracket noise", "你好[笑声]世界", "你好世界"},
		{"paren noise", "前(环境音)后", "前后"},
		{"fullwidth bracket noise", "【音乐】开始了", "开始了"},
		{"noise only", "[音乐]", ""},
		{"whitespace collapsed", "  你好   世界  ", "你好 世界"},
		{"char run collapsed", "好好好厉害", "好厉害"},
		{"char pair kept", "谢谢大家", "谢谢大家"},
		{"filler ranhou", "然后然后然后我们走", "然后我们走"},
		{"filler jiushi", "就是就是这样", "就是这样"},
		{"filler pronoun pair", "我我觉得", "我觉得"},
		{"filler en run", "嗯嗯嗯好的", "嗯好的"},
		{"filler a run", "啊啊啊啊对", "啊对"},
		{"single a kept", "啊对", "啊对"},
		{"doubled period", "结束了。。", "结束了。"},
		{"doubled comma", "一，，二", "一，二"},
		{"enumeration comma run", "一、、、二", "一、二"},
		{"leading filler with noise", "嗯嗯嗯大家好[掌声]今天天气很好。", "嗯大家好今天天气很好。"},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"你好[笑声]世界",
		"嗯嗯嗯大家好[掌声]今天天气很好。",
		"然后然后然后我们走了。。。",
		"  空  白  ",
		"【音乐】(掌声)[笑声]",
		"啊啊啊好好好，，一样一样",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeNeverGrows(t *testing.T) {
	inputs := []string{
		"大家好",
		"你好[笑声]世界",
		"然后然后我们 就是就是 去了。。",
		"   ",
		"(a(b)c)",
		"[[嵌套]]",
	}

	for _, in := range inputs {
		got := Normalize(in)
		if utf8.RuneCountInString(got) > utf8.RuneCountInString(in) {
			t.Errorf("Normalize(%q) = %q grew the input", in, got)
		}
	}
}

func TestNormalizeStripsAllNoiseMarkers(t *testing.T) {
	got := Normalize("你好[笑声]世界")
	if strings.ContainsAny(got, "[]") || strings.Contains(got, "笑声") {
		t.Errorf("noise annotation survived: %q", got)
	}
}
