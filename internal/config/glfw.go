//go:build glfw

package config

const glfwBuilt = true
