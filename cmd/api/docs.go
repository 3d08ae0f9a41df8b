// @title Ridgecast API
// @version 1.0
// @description Risk advisory API for Taiwanese mountain and road sites, with a geocode/route proxy
// @BasePath /
package main
