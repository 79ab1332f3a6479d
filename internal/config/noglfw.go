//go:build !glfw

package config

// glfwBuilt reports whether the GLFW backend was compiled in.
const glfwBuilt = false
