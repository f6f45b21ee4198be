// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package normhtml

import "testing"

func TestNormalizeHTML(t *testing.T) {
	tests := []struct {
		b    string
		want string
	}{
		{"<p>a</p>\n<p>b</p>", "<p>a</p><p>b</p>"},
		{"<p> a  b </p>", "<p>a b</p>"},
		{"<ul>\n<li>a</li>\n</ul>", "<ul><li>a</li></ul>"},
		{"<p>a&amp;b</p>", "<p>a&amp;b</p>"},
		{"<p><strong> x </strong></p>", "<p><strong> x </strong></p>"},
		{`<h1 id="t">T</h1>`, `<h1 id="t">T</h1>`},
		{"<hr>", "<hr>"},
	}
	for _, test := range tests {
		if got := string(NormalizeHTML([]byte(test.b))); got != test.want {
			t.Errorf("NormalizeHTML(%q) = %q; want %q", test.b, got, test.want)
		}
	}
}
