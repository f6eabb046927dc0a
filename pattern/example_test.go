// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pattern_test

import (
	"fmt"

	"rivaas.dev/routes/pattern"
)

func ExampleParse() {
	p, err := pattern.Parse("/users/:id/posts/:post")
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}
	fmt.Println(p.Params())
	fmt.Println(p.Static())
	// Output:
	// [id post]
	// false
}

func ExamplePattern_Match() {
	p := pattern.MustParse("/users/:id/(posts/:post/)")

	params, ok := p.Match("/users/7/posts/42/")
	fmt.Println(ok)
	fmt.Println(params.Map()["id"], params.Map()["post"])

	params, ok = p.Match("/users/7/")
	fmt.Println(ok, params.Has("post"))
	// Output:
	// true
	// 7 42
	// true false
}

func ExamplePattern_Match_wildcards() {
	p := pattern.MustParse("/a/*/b/*/c")

	params, ok := p.Match("/a/x/b/y/c")
	fmt.Println(ok, params.Masked())
	// Output:
	// true [x y]
}

func ExamplePattern_Build() {
	p := pattern.MustParse("/users/:id/(posts/:post/)")

	path, _ := p.Build(pattern.NewParams().Set("id", "7"))
	fmt.Println(path)

	path, _ = p.Build(pattern.NewParams().Set("id", "7").Set("post", "42"))
	fmt.Println(path)

	_, err := p.Build(pattern.NewParams().SetNull("id"))
	fmt.Println(err)
	// Output:
	// /users/7/
	// /users/7/posts/42/
	// missing required parameter: id
}

func ExamplePattern_Build_nestedGroups() {
	p := pattern.MustParse("/admin/(user/(edit/:id/)(album/:albumId/):session/)test")

	path, _ := p.Build(pattern.NewParams().Set("id", "4").Set("albumId", "2"))
	fmt.Println(path)

	path, _ = p.Build(pattern.NewParams().Set("id", "4").Set("session", "s"))
	fmt.Println(path)
	// Output:
	// /admin/test
	// /admin/user/edit/4/s/test
}

func ExampleWithPairedWildcard() {
	p := pattern.MustParse("/files/*", pattern.WithPairedWildcard())

	params, ok := p.Match("/files/region/eu/bucket/media")
	fmt.Println(ok, params.Map()["region"], params.Map()["bucket"])

	_, ok = p.Match("/files/region")
	fmt.Println(ok)

	path, _ := p.Build(pattern.NewParams().Set("region", "eu").Set("bucket", "media"))
	fmt.Println(path)
	// Output:
	// true eu media
	// false
	// /files/bucket/media/region/eu
}
