package launcher

// Call is one recorded launch invocation.
type Call struct {
	Name string
	Args []string
}

// Recorder is a Launcher test double that captures invocations in order.
type Recorder struct {
	Calls []Call
	Err   error // returned from every call when set
}

func (r *Recorder) Start(name string, args ...string) error {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
	return r.Err
}

func (r *Recorder) Shell(cmdline string) error {
	return r.Start("sh", "-c", cmdline)
}

// Shells returns the recorded shell command lines, in invocation order.
func (r *Recorder) Shells() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Name == "sh" && len(c.Args) == 2 && c.Args[0] == "-c" {
			out = append(out, c.Args[1])
		}
	}
	return out
}
