// Package page composes session state, the auth controller and the task view
// model into the single page the client renders. It holds no state of its
// own: the page is a pure function of the three components' outputs.
package page

import (
	"fmt"
	"net/http"
	"time"

	authctl "taskmanager/controller/auth"
	taskctl "taskmanager/controller/task"
	"taskmanager/session"

	"github.com/gin-gonic/gin"
)

const (
	brand        = "Task Manager"
	pageTitle    = "Task List"
	msgLoginGate = "Please log in to see your tasks."
)

type UserView struct {
	Email string `json:"email"`
}

type Navbar struct {
	Brand string            `json:"brand"`
	User  *UserView         `json:"user,omitempty"`
	Modal authctl.ModalView `json:"modal"`
}

type Main struct {
	Message string        `json:"message,omitempty"`
	Form    *taskctl.Form `json:"form,omitempty"`
	Rows    []taskctl.Row `json:"rows,omitempty"`
}

type State struct {
	Title  string `json:"title"`
	Navbar Navbar `json:"navbar"`
	Main   Main   `json:"main"`
	Footer string `json:"footer"`
}

func Render(sess *session.State, authCtrl *authctl.Controller, vm *taskctl.ViewModel) State {
	page := State{
		Title: pageTitle,
		Navbar: Navbar{
			Brand: brand,
			Modal: authCtrl.View(),
		},
		Footer: fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), brand),
	}

	identity := sess.Current()
	if identity == nil {
		page.Main = Main{Message: msgLoginGate}
		return page
	}

	page.Navbar.User = &UserView{Email: identity.Email}
	form := vm.FormView()
	page.Main = Main{Form: &form, Rows: vm.Table()}
	return page
}

func PageController(router *gin.Engine, sess *session.State, authCtrl *authctl.Controller, vm *taskctl.ViewModel) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, Render(sess, authCtrl, vm))
	})
}
