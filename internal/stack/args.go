package stack

// NetworkName is the bridge network shared by every quickstack application
const NetworkName = "quickstack-platform-interconnect"

// SyncExcludes are directory names never pushed by cloudpush
var SyncExcludes = []string{"target", "venv", "node_modules"}

func infoArgs() []string {
	return []string{"info"}
}

func networkInspectArgs(network string) []string {
	return []string{"network", "inspect", network}
}

func networkCreateArgs(network string) []string {
	return []string{"network", "create", "-d", "bridge", network}
}

func composeArgs(sub ...string) []string {
	return append([]string{"compose"}, sub...)
}

func buildArgs(clean bool) []string {
	if clean {
		return composeArgs("build", "--no-cache")
	}
	return composeArgs("build")
}

func upArgs() []string {
	return composeArgs("up", "-d")
}

func logsArgs(service string) []string {
	return composeArgs("logs", "--follow", service)
}

// execArgs opens cmd in service. Without a TTY, compose must not allocate one.
func execArgs(service string, tty bool, cmd []string) []string {
	args := composeArgs("exec")
	if !tty {
		args = append(args, "-T")
	}
	args = append(args, service)
	return append(args, cmd...)
}

func rsyncArgs(target string) []string {
	args := []string{"-avzP", "--stats", "./", target}
	for _, dir := range SyncExcludes {
		args = append(args, "--exclude", dir)
	}
	return args
}
