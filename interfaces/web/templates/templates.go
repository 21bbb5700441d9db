// Package templates renders the routed pages with html/template. Pages
// share a common layout; view models come from the presenters package.
package templates

import (
	"fmt"
	"html/template"
	"io"
)

// Funcs available in all templates.
var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

// Render renders a named page inside the layout.
func Render(w io.Writer, name string, data any) error {
	page, ok := pages[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if _, err := tmpl.New("content").Parse(page); err != nil {
		return fmt.Errorf("parse page %s: %w", name, err)
	}
	for name, partial := range partials {
		if _, err := tmpl.New(name).Parse(partial); err != nil {
			return fmt.Errorf("parse partial %s: %w", name, err)
		}
	}
	return tmpl.Execute(w, data)
}

const layout = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} | Polytechub</title>
{{if .Description}}<meta name="description" content="{{.Description}}">{{end}}
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 text-gray-800">
<nav class="px-6 flex items-center justify-between md:px-[10%] w-full sticky top-0 border-b shadow-md bg-white z-50">
  <a href="/" class="py-4"><h1 class="text-2xl font-bold text-blue-500">Poly<span class="text-violet-400">Techub</span></h1></a>
  <ul class="hidden md:flex items-center gap-10">
    <li><a href="/" class="text-lg font-semibold text-gray-700 hover:text-blue-600">Home</a></li>
    <li><a href="/blog-page" class="text-lg font-semibold text-gray-700 hover:text-blue-600">Blog</a></li>
    <li><a href="/contact-us" class="text-lg font-semibold text-gray-700 hover:text-blue-600">Contact Us</a></li>
  </ul>
  <form action="/search" method="get" class="hidden md:block py-2">
    <input type="text" name="q" placeholder="Search..." class="bg-gray-100 border-none outline-none text-gray-700 px-4 py-2 rounded-lg">
  </form>
</nav>
<main>
{{template "content" .}}
</main>
<footer class="border-t mt-16 py-8 text-center text-sm text-gray-500">
  <p>&copy; Polytechub. All rights reserved.</p>
</footer>
</body>
</html>`

var partials = map[string]string{
	"post_card": `<a href="{{.URL}}" class="block bg-white shadow-md rounded-lg overflow-hidden hover:shadow-lg transition p-4 mb-4">
  {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}" class="w-48 h-48 object-cover rounded-full">{{end}}
  <h3 class="text-[1.5rem] font-semibold">{{.Title}}</h3>
  {{if .CategoryLabel}}<span class="text-xs text-sky-600">{{.CategoryLabel}}</span>{{end}}
  <p class="text-sm">{{.Excerpt}}</p>
  <span class="text-blue-500 mt-2 inline-block">Read More</span>
</a>`,

	"pagination": `<div class="flex justify-center mt-8">
  {{if .PrevEnabled}}<a href="?page={{.PrevPage}}" class="px-4 py-2 mx-1 rounded bg-gray-200 hover:bg-gray-300">Previous</a>
  {{else}}<span class="px-4 py-2 mx-1 rounded bg-gray-200 cursor-not-allowed opacity-50">Previous</span>{{end}}
  {{$current := .CurrentPage}}
  {{range .Pages}}
    {{if eq . $current}}<span class="px-4 py-2 mx-1 rounded bg-blue-600 text-white">{{.}}</span>
    {{else}}<a href="?page={{.}}" class="px-4 py-2 mx-1 rounded bg-gray-200 hover:bg-gray-300">{{.}}</a>{{end}}
  {{end}}
  {{if .NextEnabled}}<a href="?page={{.NextPage}}" class="px-4 py-2 mx-1 rounded bg-gray-200 hover:bg-gray-300">Next</a>
  {{else}}<span class="px-4 py-2 mx-1 rounded bg-gray-200 cursor-not-allowed opacity-50">Next</span>{{end}}
</div>`,

	"listing": `{{if .Loading}}
  <div class="flex justify-center my-6"><div class="w-8 h-8 border-4 border-blue-600 border-t-transparent rounded-full animate-spin"></div></div>
{{else if .ErrorMessage}}
  <p class="text-red-500">{{.ErrorMessage}}</p>
{{else if .Empty}}
  <div class="text-center text-rose-600">No Post Available</div>
{{else}}
  <div class="grid grid-cols-1 gap-6">
    {{range .Posts}}{{template "post_card" .}}{{end}}
  </div>
  {{template "pagination" .Pagination}}
{{end}}`,

	"category_list": `<div class="space-y-2">
  {{range .}}
  <div class="px-4 py-4 bg-white shadow-sm rounded-lg hover:shadow-md transition">
    <a href="{{.URL}}" class="text-sky-600 font-semibold">{{.Name}} ({{.Count}})</a>
  </div>
  {{end}}
</div>`,
}

var pages = map[string]string{
	"home": `<section class="lg:px-[10%] md:px-[8%] px-[3%] py-8">
  <h1 class="text-3xl font-bold mb-6">Latest Posts</h1>
  <div class="grid grid-cols-1 md:grid-cols-3 gap-6">
    {{range .Latest}}{{template "post_card" .}}{{end}}
  </div>
  <h2 class="text-2xl font-bold my-6">Categories ({{len .Categories}})</h2>
  {{template "category_list" .Categories}}
</section>`,

	"blog": `<div class="px-[10%] mx-auto py-8">
  <div class="grid grid-cols-1 md:grid-cols-3 gap-16">
    <div class="md:col-span-2">
      <h1 class="text-3xl font-bold mb-6">All Blogs</h1>
      {{template "listing" .Listing}}
    </div>
    <div>
      <h2 class="text-2xl font-bold mb-4">Latest Posts</h2>
      <div class="space-y-4">{{range .Latest}}{{template "post_card" .}}{{end}}</div>
      <h2 class="text-2xl font-bold my-4">Categories ({{len .Categories}})</h2>
      {{template "category_list" .Categories}}
    </div>
  </div>
</div>`,

	"category": `<section class="mx-auto mt-6 lg:px-[10%] md:px-[7%] px-[3%] w-full">
  <div class="flex w-full md:flex-row flex-col justify-between mb-16">
    <div>
      <h1 class="text-2xl font-semibold">{{.Category.Name}}</h1>
      <p class="text-gray-700 mt-2">{{.Category.Description}}</p>
    </div>
    <form method="get" class="flex items-center h-[2.3rem] gap-2 mt-4 border-[0.1rem] border-orange-500 rounded-md">
      <input type="text" name="q" value="{{.Listing.Query}}" placeholder="Search posts..." class="flex-grow outline-none py-2 px-2 text-orange-500 h-full text-sm bg-transparent">
    </form>
  </div>
  {{template "listing" .Listing}}
</section>`,

	"post": `<div class="mx-auto mt-6 lg:w-8/12 sm:w-10/12 px-1">
  <div class="border p-4 bg-white rounded-lg">
    <h1 class="text-2xl font-semibold text-gray-800 mb-4">{{.Post.Title}}</h1>
    <div class="prose max-w-none">{{.Post.BodyHTML}}</div>
  </div>
  <div class="mt-4"><a href="/blog-page" class="text-blue-500 hover:underline">&larr; Previous</a></div>
</div>`,

	"contact": `<div class="min-h-screen bg-gray-100 flex items-center justify-center px-4 py-10">
  <div class="w-full max-w-4xl bg-white shadow-lg rounded-lg overflow-hidden">
    <div class="bg-blue-600 text-white text-center py-8">
      <h1 class="text-3xl font-bold">Contact Us</h1>
      <p class="text-lg mt-2">We'd love to hear from you!</p>
    </div>
    <div class="p-6 sm:p-10">
      {{if .Submitted}}
      <div class="text-center py-6">
        <h2 class="text-2xl font-semibold text-green-600">Thank you for reaching out!</h2>
        <p class="text-gray-600 mt-4">We'll get back to you as soon as possible.</p>
      </div>
      {{else}}
      {{if .ErrorMessage}}<p class="text-red-500 mb-4">{{.ErrorMessage}}</p>{{end}}
      <form method="post" class="grid grid-cols-1 sm:grid-cols-2 gap-6">
        <div>
          <label for="name" class="block text-gray-700 font-medium mb-2">Your Name</label>
          <input type="text" name="name" id="name" value="{{.Form.Name}}" class="w-full p-3 border border-gray-300 rounded-lg" required>
        </div>
        <div>
          <label for="email" class="block text-gray-700 font-medium mb-2">Email Address</label>
          <input type="email" name="email" id="email" value="{{.Form.Email}}" class="w-full p-3 border border-gray-300 rounded-lg" required>
        </div>
        <div class="col-span-1 sm:col-span-2">
          <label for="subject" class="block text-gray-700 font-medium mb-2">Subject</label>
          <input type="text" name="subject" id="subject" value="{{.Form.Subject}}" class="w-full p-3 border border-gray-300 rounded-lg" required>
        </div>
        <div class="col-span-1 sm:col-span-2">
          <label for="message" class="block text-gray-700 font-medium mb-2">Message</label>
          <textarea name="message" id="message" rows="4" class="w-full p-3 border border-gray-300 rounded-lg" required>{{.Form.Message}}</textarea>
        </div>
        <div class="col-span-1 sm:col-span-2 flex justify-end">
          <button type="submit" class="bg-blue-600 text-white font-bold py-3 px-6 rounded-lg shadow-lg hover:bg-blue-700 transition">Submit</button>
        </div>
      </form>
      {{end}}
    </div>
  </div>
</div>`,

	"not_found": `<div class="flex flex-col items-center justify-center h-[70vh]">
  <h1 class="text-4xl font-bold text-gray-800">404</h1>
  <p class="text-center text-red-500 mt-4">{{.Message}}</p>
  <a href="/" class="text-blue-500 hover:underline mt-4">Back to home</a>
</div>`,

	"error": `<div class="flex flex-col items-center justify-center h-[70vh]">
  <p class="text-center text-red-500">{{.Message}}</p>
  <a href="/" class="text-blue-500 hover:underline mt-4">Back to home</a>
</div>`,
}
