package service

type courseStyle struct {
	icon  string
	color string
}

var courseStyles = map[string]courseStyle{
	"html":       {"fab fa-html5", "from-orange-500 to-red-500"},
	"css":        {"fab fa-css3-alt", "from-blue-500 to-teal-500"},
	"javascript": {"fab fa-js", "from-yellow-500 to-orange-500"},
	"python":     {"fab fa-python", "from-green-500 to-blue-500"},
	"java":       {"fab fa-java", "from-red-500 to-orange-500"},
	"react":      {"fab fa-react", "from-cyan-500 to-blue-500"},
	"c":          {"fas fa-code", "from-gray-500 to-blue-500"},
}

var defaultCourseStyle = courseStyle{"fas fa-book", "from-gray-500 to-blue-500"}

func styleFor(key string) courseStyle {
	if s, ok := courseStyles[key]; ok {
		return s
	}
	return defaultCourseStyle
}
